package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

const (
	DefaultAvailableLimit = 50
	MaxAvailableLimit     = 100
)

// GetOrder отдает заказ участнику или администратору. Остальным заказ не виден.
func (s *Order) GetOrder(ctx context.Context, principal *entities.Principal, id uuid.UUID) (*entities.Order, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	o, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if principal.Role != entities.RoleAdmin && !o.IsParticipant(principal.UserID) {
		return nil, ErrOrderNotFound
	}

	return o, nil
}

// ListAvailable - заказы, готовые к выдаче, для одобренных водителей.
func (s *Order) ListAvailable(ctx context.Context, principal *entities.Principal, limit uint64) ([]entities.Order, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	if _, err := s.approvedDriver(ctx, principal); err != nil {
		return nil, err
	}

	switch {
	case limit == 0:
		limit = DefaultAvailableLimit
	case limit > MaxAvailableLimit:
		limit = MaxAvailableLimit
	}

	orders, err := s.repository.ListAvailable(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list available orders: %w", err)
	}

	return orders, nil
}
