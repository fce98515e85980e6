//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_test
package driver

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, id uuid.UUID, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Driver, error)
	GetAll(ctx context.Context, status *entities.DriverStatus) ([]entities.Driver, error)
	Update(ctx context.Context, driverModifyEntity entities.DriverModify) (*entities.Driver, error)
}

type OrderRepository interface {
	CountDriverDeliveries(ctx context.Context, driverID uuid.UUID) (*entities.DriverStats, error)
}

type WalletService interface {
	TotalPayouts(ctx context.Context, driverID uuid.UUID) (decimal.Decimal, error)
}
