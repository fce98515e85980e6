package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Service struct {
	history       HistoryRepository
	statusFactory HandlerFactory
}

func New(history HistoryRepository, statusFactory HandlerFactory) *Service {
	return &Service{
		history:       history,
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange пишет событие в историю статусов и выполняет
// обработчик статуса. Повторная доставка события безопасна: запись в историю
// идемпотентна, обработчики тоже.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderEvent entities.OrderEvent) error {
	if orderEvent.OrderID == uuid.Nil || !orderEvent.Status.IsValid() {
		return ErrInvalidEvent
	}

	item := entities.StatusHistoryItem{
		OrderID: orderEvent.OrderID,
		Status:  orderEvent.Status,
		At:      orderEvent.OccurredAt,
	}
	if orderEvent.ActorID != uuid.Nil {
		actorID := orderEvent.ActorID
		item.ActorID = &actorID
	}

	_, err := s.history.Record(ctx, item)
	if err != nil {
		return fmt.Errorf("record status history: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(orderEvent.Status)
	if err != nil {
		// для остальных статусов достаточно истории
		if errors.Is(err, ErrUndefinedStatus) {
			return nil
		}
		return err
	}

	return executeFn(ctx, orderEvent.OrderID)
}
