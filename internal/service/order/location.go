package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/pkg/geo"
)

// UpdateLocation записывает текущую позицию водителя по заказу.
// Первая запись также становится стартовой позицией доставки.
func (s *Order) UpdateLocation(
	ctx context.Context,
	principal *entities.Principal,
	orderID uuid.UUID,
	point geo.Point,
) (*entities.Order, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if principal.Role != entities.RoleDriver {
		return nil, ErrForbidden
	}
	if !point.Valid() {
		return nil, ErrInvalidCoordinates
	}

	upd := entities.LocationUpdate{
		OrderID:  orderID,
		DriverID: principal.UserID,
		Point:    point,
		At:       time.Now().UTC(),
	}

	updated, err := s.repository.UpdateDriverLocation(ctx, upd)
	if err == nil {
		return updated, nil
	}
	if !errors.Is(err, ErrNotApplied) {
		return nil, fmt.Errorf("update driver location: %w", err)
	}

	o, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if o.DriverID == nil || *o.DriverID != principal.UserID {
		return nil, ErrForbidden
	}
	if o.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: %s", ErrTerminalState, o.Status)
	}

	return nil, fmt.Errorf("%w: concurrent update", ErrInvalidState)
}
