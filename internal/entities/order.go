package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/pkg/geo"
)

type Order struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	MerchantID      uuid.UUID
	MerchantOwnerID uuid.UUID
	DriverID        *uuid.UUID
	ZoneID          *uuid.UUID
	Status          OrderStatus

	PickupCode   string
	DeliveryCode string

	Prices        OrderPrices
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus

	DeliveryLocation geo.Point
	DeliveryAddress  string

	DriverCurrentLocation       *DriverLocation
	DriverStartDeliveryLocation *DriverLocation
	DriverLocationUpdatedAt     *time.Time

	DeliveryDeadline *time.Time
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Items []OrderItem
}

type OrderPrices struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Discount    decimal.Decimal
	Total       decimal.Decimal
}

type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

type DriverLocation struct {
	geo.Point
	Timestamp time.Time
}

// IsParticipant - заказчик, назначенный водитель или владелец мерчанта.
func (o *Order) IsParticipant(userID uuid.UUID) bool {
	if o.CustomerID == userID || o.MerchantOwnerID == userID {
		return true
	}
	return o.DriverID != nil && *o.DriverID == userID
}

type OrderStatus string

const (
	OrderPending            OrderStatus = "PENDING"
	OrderAcceptedByMerchant OrderStatus = "ACCEPTED_BY_MERCHANT"
	OrderRejectedByMerchant OrderStatus = "REJECTED_BY_MERCHANT"
	OrderInPreparation      OrderStatus = "IN_PREPARATION"
	OrderReadyToDeliver     OrderStatus = "READY_TO_DELIVER"
	OrderAcceptedByDriver   OrderStatus = "ACCEPTED_BY_DRIVER"
	OrderRejectedByDriver   OrderStatus = "REJECTED_BY_DRIVER"
	OrderOnTheWay           OrderStatus = "ON_THE_WAY"
	OrderCanceledByMerchant OrderStatus = "CANCELED_BY_MERCHANT"
	OrderCanceledByDriver   OrderStatus = "CANCELED_BY_DRIVER"
	OrderCompleted          OrderStatus = "COMPLETED"
)

var TerminalStatuses = []OrderStatus{
	OrderCompleted,
	OrderRejectedByMerchant,
	OrderRejectedByDriver,
	OrderCanceledByMerchant,
	OrderCanceledByDriver,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsTerminal() bool {
	switch s {
	case OrderCompleted,
		OrderRejectedByMerchant,
		OrderRejectedByDriver,
		OrderCanceledByMerchant,
		OrderCanceledByDriver:
		return true
	default:
		return false
	}
}

// IsRefundable - терминальные статусы, после которых оплата кошельком возвращается.
func (s OrderStatus) IsRefundable() bool {
	return s.IsTerminal() && s != OrderCompleted
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending,
		OrderAcceptedByMerchant,
		OrderRejectedByMerchant,
		OrderInPreparation,
		OrderReadyToDeliver,
		OrderAcceptedByDriver,
		OrderRejectedByDriver,
		OrderOnTheWay,
		OrderCanceledByMerchant,
		OrderCanceledByDriver,
		OrderCompleted:
		return true
	default:
		return false
	}
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentWallet PaymentMethod = "WALLET"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	return m == PaymentCash || m == PaymentWallet
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type Checkout struct {
	CustomerID       uuid.UUID
	MerchantID       uuid.UUID
	Items            []CheckoutItem
	DeliveryLocation geo.Point
	DeliveryAddress  string
	PaymentMethod    PaymentMethod
}

type CheckoutItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// TransitionResult - заказ после перехода и начисление водителю, если оно было.
type TransitionResult struct {
	Order    *Order
	Earnings *decimal.Decimal
}
