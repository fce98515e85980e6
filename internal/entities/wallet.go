package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// driverShare - доля водителя от стоимости доставки.
var driverShare = decimal.RequireFromString("0.8")

// DriverEarnings = deliveryFee * 0.8, округление до копеек.
func DriverEarnings(deliveryFee decimal.Decimal) decimal.Decimal {
	return deliveryFee.Mul(driverShare).Round(2)
}

type Wallet struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	OwnerRole Role
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransactionType string

const (
	TransactionCredit TransactionType = "CREDIT"
	TransactionDebit  TransactionType = "DEBIT"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
)

func (s TransactionStatus) String() string {
	return string(s)
}

type TransactionKind string

const (
	KindPayout       TransactionKind = "PAYOUT"
	KindWithdrawal   TransactionKind = "WITHDRAWAL"
	KindOrderPayment TransactionKind = "ORDER_PAYMENT"
	KindRefund       TransactionKind = "REFUND"
)

type Transaction struct {
	ID        uuid.UUID
	WalletID  uuid.UUID
	OrderID   *uuid.UUID
	Type      TransactionType
	Status    TransactionStatus
	Kind      TransactionKind
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WalletWithTransactions struct {
	Wallet       *Wallet
	Transactions []Transaction
}

// WalletReconciliation сравнивает баланс с суммой по журналу транзакций:
// completed credits - completed debits - pending debits.
type WalletReconciliation struct {
	WalletID uuid.UUID
	Balance  decimal.Decimal
	Expected decimal.Decimal
}

func (r WalletReconciliation) Drift() decimal.Decimal {
	return r.Balance.Sub(r.Expected)
}

func (r WalletReconciliation) Consistent() bool {
	return r.Balance.Equal(r.Expected)
}
