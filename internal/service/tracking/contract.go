//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
}

type HistoryRepository interface {
	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.StatusHistoryItem, error)
}
