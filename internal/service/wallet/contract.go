//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_test
package wallet

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

type Repository interface {
	Credit(ctx context.Context, newWalletID, userID uuid.UUID, role entities.Role, amount decimal.Decimal, at time.Time) (*entities.Wallet, error)
	Debit(ctx context.Context, walletID uuid.UUID, amount decimal.Decimal, at time.Time) (*entities.Wallet, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.Wallet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Wallet, error)

	CreateTransaction(ctx context.Context, t *entities.Transaction) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	GetOrderTransaction(ctx context.Context, orderID uuid.UUID, kind entities.TransactionKind) (*entities.Transaction, error)
	FinalizePending(ctx context.Context, id uuid.UUID, status entities.TransactionStatus, at time.Time) (*entities.Transaction, error)
	ListTransactions(ctx context.Context, walletID uuid.UUID, limit uint64) ([]entities.Transaction, error)
	SumCompleted(ctx context.Context, userID uuid.UUID, kind entities.TransactionKind) (decimal.Decimal, error)

	Reconcile(ctx context.Context, walletID uuid.UUID) (*entities.WalletReconciliation, error)
	ListInconsistent(ctx context.Context) ([]entities.WalletReconciliation, error)
}

type OrderRepository interface {
	MarkRefunded(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
