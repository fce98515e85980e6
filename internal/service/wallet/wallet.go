package wallet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

const DefaultTransactionsLimit = 20

type Wallet struct {
	repository Repository
	orders     OrderRepository
	txManager  TxManager
}

func New(repository Repository, orders OrderRepository, txManager TxManager) *Wallet {
	return &Wallet{
		repository: repository,
		orders:     orders,
		txManager:  txManager,
	}
}

// GetWallet возвращает кошелек пользователя с последними транзакциями.
func (s *Wallet) GetWallet(ctx context.Context, principal *entities.Principal) (*entities.WalletWithTransactions, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	wallet, err := s.repository.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}

	transactions, err := s.repository.ListTransactions(ctx, wallet.ID, DefaultTransactionsLimit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	return &entities.WalletWithTransactions{
		Wallet:       wallet,
		Transactions: transactions,
	}, nil
}

// TotalPayouts - сумма завершенных выплат водителю.
func (s *Wallet) TotalPayouts(ctx context.Context, driverID uuid.UUID) (decimal.Decimal, error) {
	sum, err := s.repository.SumCompleted(ctx, driverID, entities.KindPayout)
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum payouts: %w", err)
	}
	return sum, nil
}

func (s *Wallet) newTransaction(
	walletID uuid.UUID,
	orderID *uuid.UUID,
	kind entities.TransactionKind,
	typ entities.TransactionType,
	status entities.TransactionStatus,
	amount decimal.Decimal,
	at time.Time,
) *entities.Transaction {
	return &entities.Transaction{
		ID:        uuid.New(),
		WalletID:  walletID,
		OrderID:   orderID,
		Type:      typ,
		Status:    status,
		Kind:      kind,
		Amount:    amount,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func isValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Round(2))
}

func notApplied(err error) bool {
	return errors.Is(err, ErrNotApplied)
}
