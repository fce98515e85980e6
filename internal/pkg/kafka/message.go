package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// OrderStatusChangedMessage - тело сообщения в топике order.status.changed.
type OrderStatusChangedMessage struct {
	EventID        int64     `json:"event_id"`
	OrderID        uuid.UUID `json:"order_id"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	ActorID        uuid.UUID `json:"actor_id"`
	ActorRole      string    `json:"actor_role,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func EncodeOrderEvent(event entities.OrderEvent) ([]byte, error) {
	body, err := json.Marshal(OrderStatusChangedMessage{
		EventID:        event.ID,
		OrderID:        event.OrderID,
		Status:         event.Status.String(),
		PreviousStatus: event.PreviousStatus.String(),
		ActorID:        event.ActorID,
		ActorRole:      event.ActorRole.String(),
		OccurredAt:     event.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode order event: %w", err)
	}
	return body, nil
}

func DecodeOrderEvent(body []byte) (entities.OrderEvent, error) {
	var msg OrderStatusChangedMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("decode order event: %w", err)
	}

	return entities.OrderEvent{
		ID:             msg.EventID,
		OrderID:        msg.OrderID,
		Status:         entities.OrderStatus(msg.Status),
		PreviousStatus: entities.OrderStatus(msg.PreviousStatus),
		ActorID:        msg.ActorID,
		ActorRole:      entities.Role(msg.ActorRole),
		OccurredAt:     msg.OccurredAt,
	}, nil
}
