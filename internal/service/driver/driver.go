package driver

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Driver struct {
	repository Repository
	orders     OrderRepository
	wallet     WalletService
}

func New(repository Repository, orders OrderRepository, wallet WalletService) *Driver {
	return &Driver{
		repository: repository,
		orders:     orders,
		wallet:     wallet,
	}
}

// Register регистрирует водителя. Новый водитель всегда ждет одобрения.
func (s *Driver) Register(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.Name == nil || driverModify.Phone == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}

	if driverModify.VehicleType == nil {
		vehicle := entities.DefaultVehicleType
		driverModify.VehicleType = &vehicle
	}
	if !isValidVehicle(*driverModify.VehicleType) {
		return nil, ErrInvalidVehicle
	}

	status := entities.DefaultDriverStatus
	driverModify.Status = &status

	driver, err := s.repository.Create(ctx, uuid.New(), driverModify)
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) UpdateDriver(ctx context.Context, principal *entities.Principal, driverModify entities.DriverModify) (*entities.Driver, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	if driverModify.ID == nil {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name == nil &&
		driverModify.Phone == nil &&
		driverModify.Status == nil &&
		driverModify.VehicleType == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	if driverModify.Phone != nil && !isValidPhone(*driverModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if driverModify.Status != nil && !isValidStatus(*driverModify.Status) {
		return nil, ErrInvalidStatus
	}
	if driverModify.VehicleType != nil && !isValidVehicle(*driverModify.VehicleType) {
		return nil, ErrInvalidVehicle
	}

	driver, err := s.repository.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return driver, nil
}

func (s *Driver) GetDriver(ctx context.Context, principal *entities.Principal, id uuid.UUID) (*entities.Driver, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	driver, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}

	return driver, nil
}

func (s *Driver) GetDrivers(ctx context.Context, principal *entities.Principal, status *entities.DriverStatus) ([]entities.Driver, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if status != nil && !isValidStatus(*status) {
		return nil, ErrInvalidStatus
	}

	drivers, err := s.repository.GetAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}

	return drivers, nil
}

// GetStats собирает статистику доставок водителя. Водитель видит только свою,
// администратор любую.
func (s *Driver) GetStats(ctx context.Context, principal *entities.Principal, driverID uuid.UUID) (*entities.DriverStats, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}

	switch principal.Role {
	case entities.RoleAdmin:
	case entities.RoleDriver:
		if principal.UserID != driverID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}

	stats, err := s.orders.CountDriverDeliveries(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("count deliveries: %w", err)
	}

	stats.TotalEarnings, err = s.wallet.TotalPayouts(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("total earnings: %w", err)
	}

	return stats, nil
}

func requireAdmin(principal *entities.Principal) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	if principal.Role != entities.RoleAdmin {
		return ErrAdminOnly
	}
	return nil
}
