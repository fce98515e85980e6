package entities

import (
	"time"

	"github.com/google/uuid"
	"marketplace/pkg/geo"
)

const (
	PollIntervalOnTheWay         = 5 * time.Second
	PollIntervalAcceptedByDriver = 15 * time.Second
	PollIntervalReadyToDeliver   = 30 * time.Second
)

// PollInterval - как часто клиенту перечитывать трекинг, 0 - опрос не нужен.
func PollInterval(status OrderStatus) time.Duration {
	switch status {
	case OrderOnTheWay:
		return PollIntervalOnTheWay
	case OrderAcceptedByDriver:
		return PollIntervalAcceptedByDriver
	case OrderReadyToDeliver:
		return PollIntervalReadyToDeliver
	default:
		return 0
	}
}

type Tracking struct {
	OrderID                     uuid.UUID
	Status                      OrderStatus
	DriverID                    *uuid.UUID
	DriverCurrentLocation       *DriverLocation
	DriverStartDeliveryLocation *DriverLocation
	DriverLocationUpdatedAt     *time.Time
	DeliveryLocation            geo.Point
	RemainingDistanceMeters     *float64
	DeliveryDeadline            *time.Time
	PollInterval                time.Duration
	Timeline                    []StatusHistoryItem
}

// NewTracking собирает снимок трекинга из заказа и его истории статусов.
func NewTracking(order *Order, timeline []StatusHistoryItem) *Tracking {
	t := &Tracking{
		OrderID:                     order.ID,
		Status:                      order.Status,
		DriverID:                    order.DriverID,
		DriverCurrentLocation:       order.DriverCurrentLocation,
		DriverStartDeliveryLocation: order.DriverStartDeliveryLocation,
		DriverLocationUpdatedAt:     order.DriverLocationUpdatedAt,
		DeliveryLocation:            order.DeliveryLocation,
		DeliveryDeadline:            order.DeliveryDeadline,
		PollInterval:                PollInterval(order.Status),
		Timeline:                    timeline,
	}

	if order.DriverCurrentLocation != nil && !order.Status.IsTerminal() {
		distance := geo.HaversineMeters(order.DriverCurrentLocation.Point, order.DeliveryLocation)
		t.RemainingDistanceMeters = &distance
	}

	return t
}
