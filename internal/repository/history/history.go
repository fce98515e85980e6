package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Record идемпотентен: повторная доставка того же статуса ничего не меняет.
// Возвращает false, если запись уже была.
func (r *Repository) Record(ctx context.Context, item entities.StatusHistoryItem) (bool, error) {
	query := `INSERT INTO order_status_history (order_id, status, actor_id, at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (order_id, status) DO NOTHING`

	tag, err := r.querier.Exec(ctx, query, item.OrderID, item.Status.String(), item.ActorID, item.At)
	if err != nil {
		return false, fmt.Errorf("unexpected history repository record error: %w", err)
	}

	return tag.RowsAffected() == 1, nil
}

func (r *Repository) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.StatusHistoryItem, error) {
	query := `SELECT order_id, status, actor_id, at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY at, status`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected history repository listbyorder error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.StatusHistoryItem, 0, 8)
	for rows.Next() {
		var (
			item   entities.StatusHistoryItem
			status string
		)
		if err := rows.Scan(&item.OrderID, &status, &item.ActorID, &item.At); err != nil {
			return nil, fmt.Errorf("unexpected history repository listbyorder error: %w", err)
		}
		item.Status = entities.OrderStatus(status)
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected history repository listbyorder error: %w", err)
	}

	return items, nil
}
