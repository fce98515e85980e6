package tracking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/apperr"
	"marketplace/internal/entities"
)

// MaxStreamInterval - период пульса SSE для статусов, которые не требуют опроса.
const MaxStreamInterval = 30 * time.Second

type Tracking struct {
	orders  OrderRepository
	history HistoryRepository
}

func New(orders OrderRepository, history HistoryRepository) *Tracking {
	return &Tracking{
		orders:  orders,
		history: history,
	}
}

// GetTracking возвращает снимок доставки участнику заказа или администратору.
func (s *Tracking) GetTracking(ctx context.Context, principal *entities.Principal, orderID uuid.UUID) (*entities.Tracking, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, apperr.NotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}

	if principal.Role != entities.RoleAdmin && !order.IsParticipant(principal.UserID) {
		return nil, ErrOrderNotFound
	}

	timeline, err := s.history.ListByOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("list status history: %w", err)
	}

	return entities.NewTracking(order, timeline), nil
}

// StreamInterval - период отправки снимков в потоке.
// Быстрее опроса не шлем, реже 30 секунд тоже.
func StreamInterval(status entities.OrderStatus) time.Duration {
	interval := entities.PollInterval(status)
	if interval <= 0 || interval > MaxStreamInterval {
		return MaxStreamInterval
	}
	return interval
}
