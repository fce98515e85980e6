package order

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                uuid.UUID
	CustomerID        uuid.UUID
	MerchantID        uuid.UUID
	MerchantOwnerID   uuid.UUID
	DriverID          *uuid.UUID
	ZoneID            *uuid.UUID
	Status            string
	PickupCode        string
	DeliveryCode      string
	Subtotal          decimal.Decimal
	DeliveryFee       decimal.Decimal
	Discount          decimal.Decimal
	Total             decimal.Decimal
	PaymentMethod     string
	PaymentStatus     string
	DeliveryLatitude  float64
	DeliveryLongitude float64
	DeliveryAddress   string
	DriverLat         *float64
	DriverLng         *float64
	DriverLocationAt  *time.Time
	DriverStartLat    *float64
	DriverStartLng    *float64
	DriverStartAt     *time.Time
	DeliveryDeadline  *time.Time
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type OrderItemDB struct {
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type DriverDeliveriesDB struct {
	Completed int64
	Active    int64
	OnTime    int64
}
