package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderEvent - событие смены статуса, пишется в outbox в одной транзакции с переходом.
type OrderEvent struct {
	ID             int64
	OrderID        uuid.UUID
	Status         OrderStatus
	PreviousStatus OrderStatus
	ActorID        uuid.UUID
	ActorRole      Role
	OccurredAt     time.Time
	PublishedAt    *time.Time
}

type StatusHistoryItem struct {
	OrderID uuid.UUID
	Status  OrderStatus
	ActorID *uuid.UUID
	At      time.Time
}
