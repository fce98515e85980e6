//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	FetchPending(ctx context.Context, limit uint64) ([]entities.OrderEvent, error)
	MarkPublished(ctx context.Context, ids []int64, at time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, events []entities.OrderEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
