package outbox

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"marketplace/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Enqueue должен вызываться в транзакции перехода статуса.
func (r *Repository) Enqueue(ctx context.Context, event entities.OrderEvent) (int64, error) {
	query := `INSERT INTO order_events_outbox (order_id, status, previous_status, actor_id, actor_role, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		event.OrderID,
		event.Status.String(),
		event.PreviousStatus.String(),
		event.ActorID,
		event.ActorRole.String(),
		event.OccurredAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("unexpected outbox repository enqueue error: %w", err)
	}

	return id, nil
}

// FetchPending блокирует неопубликованные события до конца транзакции.
// Параллельные релеи пропускают чужие строки.
func (r *Repository) FetchPending(ctx context.Context, limit uint64) ([]entities.OrderEvent, error) {
	query, args, err := qb.
		Select("id", "order_id", "status", "previous_status", "actor_id", "actor_role", "occurred_at").
		From("order_events_outbox").
		Where(sq.Eq{"published_at": nil}).
		OrderBy("id").
		Limit(limit).
		Suffix("FOR UPDATE SKIP LOCKED").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetchpending error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetchpending error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.OrderEvent, 0, limit)
	for rows.Next() {
		var (
			e                           entities.OrderEvent
			status, previous, actorRole string
		)
		err := rows.Scan(&e.ID, &e.OrderID, &status, &previous, &e.ActorID, &actorRole, &e.OccurredAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetchpending error: %w", err)
		}
		e.Status = entities.OrderStatus(status)
		e.PreviousStatus = entities.OrderStatus(previous)
		e.ActorRole = entities.Role(actorRole)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetchpending error: %w", err)
	}

	return events, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE order_events_outbox SET published_at = $1 WHERE id = ANY($2)`

	_, err := r.querier.Exec(ctx, query, at, ids)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository markpublished error: %w", err)
	}

	return nil
}
