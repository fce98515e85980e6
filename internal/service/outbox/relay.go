package outbox

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

const DefaultBatchSize = 100

type Relay struct {
	repository Repository
	publisher  Publisher
	txManager  TxManager
	batchSize  uint64
	now        func() time.Time
}

func New(repository Repository, publisher Publisher, txManager TxManager, batchSize int) *Relay {
	size := uint64(DefaultBatchSize)
	if batchSize > 0 {
		size = uint64(batchSize)
	}

	return &Relay{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		batchSize:  size,
		now:        time.Now,
	}
}

// RelayPending публикует пачку неотправленных событий и помечает их отправленными.
// Строки заблокированы до конца транзакции, поэтому несколько инстансов не
// публикуют одно событие параллельно. При ошибке публикации пачка остается в outbox.
func (r *Relay) RelayPending(ctx context.Context) (int, error) {
	var published int

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		events, err := r.repository.FetchPending(ctx, r.batchSize)
		if err != nil {
			return fmt.Errorf("fetch pending events: %w", err)
		}
		if len(events) == 0 {
			return nil
		}

		if err := r.publisher.Publish(ctx, events); err != nil {
			return fmt.Errorf("publish events: %w", err)
		}

		if err := r.repository.MarkPublished(ctx, eventIDs(events), r.now().UTC()); err != nil {
			return fmt.Errorf("mark events published: %w", err)
		}

		published = len(events)
		return nil
	})
	if err != nil {
		return 0, err
	}

	return published, nil
}

func eventIDs(events []entities.OrderEvent) []int64 {
	ids := make([]int64, 0, len(events))
	for _, e := range events {
		ids = append(ids, e.ID)
	}
	return ids
}
