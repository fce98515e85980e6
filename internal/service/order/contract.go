//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/pkg/geo"
)

type Repository interface {
	Create(ctx context.Context, o *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	Transition(ctx context.Context, cmd entities.TransitionCommand) (*entities.Order, entities.OrderStatus, error)
	UpdateDriverLocation(ctx context.Context, upd entities.LocationUpdate) (*entities.Order, error)
	ListAvailable(ctx context.Context, limit uint64) ([]entities.Order, error)
}

type CatalogRepository interface {
	GetMerchant(ctx context.Context, id uuid.UUID) (*entities.Merchant, error)
	GetProducts(ctx context.Context, merchantID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]entities.Product, error)
}

type DriverRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error)
}

type OutboxRepository interface {
	Enqueue(ctx context.Context, event entities.OrderEvent) (int64, error)
}

type WalletService interface {
	Payout(ctx context.Context, driverID, orderID uuid.UUID, deliveryFee decimal.Decimal) (decimal.Decimal, error)
	ChargeOrder(ctx context.Context, customerID, orderID uuid.UUID, amount decimal.Decimal) error
}

type ZoneService interface {
	Resolve(ctx context.Context, point geo.Point) (*entities.Zone, error)
}

type DeliveryTimeFactory interface {
	CalculateDeadline(vehicleType entities.VehicleType, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
