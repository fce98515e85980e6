package wallet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type WalletDB struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	OwnerRole string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TransactionDB struct {
	ID        uuid.UUID
	WalletID  uuid.UUID
	OrderID   *uuid.UUID
	Type      string
	Status    string
	Kind      string
	Amount    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ReconciliationDB struct {
	WalletID uuid.UUID
	Balance  decimal.Decimal
	Expected decimal.Decimal
}
