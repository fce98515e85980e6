package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/pkg/geo"
)

type Merchant struct {
	ID          uuid.UUID
	OwnerUserID uuid.UUID
	Name        string
	Location    geo.Point
}

type Product struct {
	ID         uuid.UUID
	MerchantID uuid.UUID
	Name       string
	Price      decimal.Decimal
	Available  bool
}
