package order

import (
	"context"
	"errors"
	"fmt"

	"marketplace/internal/apperr"
	"marketplace/internal/entities"
)

type Order struct {
	repository  Repository
	catalog     CatalogRepository
	drivers     DriverRepository
	outbox      OutboxRepository
	wallet      WalletService
	zones       ZoneService
	timeFactory DeliveryTimeFactory
	txManager   TxManager
}

func New(
	repository Repository,
	catalog CatalogRepository,
	drivers DriverRepository,
	outbox OutboxRepository,
	wallet WalletService,
	zones ZoneService,
	timeFactory DeliveryTimeFactory,
	txManager TxManager,
) *Order {
	return &Order{
		repository:  repository,
		catalog:     catalog,
		drivers:     drivers,
		outbox:      outbox,
		wallet:      wallet,
		zones:       zones,
		timeFactory: timeFactory,
		txManager:   txManager,
	}
}

// approvedDriver возвращает профиль водителя, если он одобрен.
func (s *Order) approvedDriver(ctx context.Context, principal *entities.Principal) (*entities.Driver, error) {
	if principal.Role != entities.RoleDriver {
		return nil, ErrForbidden
	}

	driver, err := s.drivers.GetByID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, apperr.NotFound) {
			return nil, ErrDriverNotApproved
		}
		return nil, fmt.Errorf("get driver: %w", err)
	}

	if driver.Status != entities.DriverApproved {
		return nil, ErrDriverNotApproved
	}

	return driver, nil
}
