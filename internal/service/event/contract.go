//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=event_test
package event

import (
	"context"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type HistoryRepository interface {
	Record(ctx context.Context, item entities.StatusHistoryItem) (bool, error)
}

type WalletService interface {
	HasPayout(ctx context.Context, orderID uuid.UUID) (bool, error)
	RefundOrder(ctx context.Context, orderID uuid.UUID) (bool, error)
}

type ExecuteFn func(ctx context.Context, orderID uuid.UUID) error

type HandlerFactory interface {
	GetHandler(status entities.OrderStatus) (ExecuteFn, error)
}
