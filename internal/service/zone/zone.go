package zone

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/pkg/geo"
	"marketplace/pkg/ttlcache"
)

const DefaultCacheTTL = time.Minute

type Zone struct {
	repository Repository
	active     *ttlcache.Value[[]entities.Zone]
}

func New(repository Repository, cacheTTL time.Duration) *Zone {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	s := &Zone{
		repository: repository,
	}
	s.active = ttlcache.New(cacheTTL, s.loadActive)
	return s
}

func (s *Zone) CreateZone(ctx context.Context, principal *entities.Principal, zoneModify entities.ZoneModify) (*entities.Zone, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	if zoneModify.Name == nil ||
		zoneModify.Polygon == nil ||
		zoneModify.DeliveryFee == nil {
		return nil, ErrMissingRequiredFields
	}
	if zoneModify.Status == nil {
		status := entities.ZoneActive
		zoneModify.Status = &status
	}

	if err := validateModify(zoneModify); err != nil {
		return nil, err
	}

	zone, err := s.repository.Create(ctx, uuid.New(), zoneModify)
	if err != nil {
		return nil, fmt.Errorf("create zone: %w", err)
	}

	s.active.Invalidate()
	return zone, nil
}

func (s *Zone) UpdateZone(ctx context.Context, principal *entities.Principal, zoneModify entities.ZoneModify) (*entities.Zone, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	if zoneModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if zoneModify.Name == nil &&
		zoneModify.Polygon == nil &&
		zoneModify.Status == nil &&
		zoneModify.Priority == nil &&
		zoneModify.DeliveryFee == nil &&
		zoneModify.Neighborhoods == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if err := validateModify(zoneModify); err != nil {
		return nil, err
	}

	zone, err := s.repository.Update(ctx, zoneModify)
	if err != nil {
		return nil, fmt.Errorf("update zone: %w", err)
	}

	s.active.Invalidate()
	return zone, nil
}

func (s *Zone) GetZone(ctx context.Context, principal *entities.Principal, id uuid.UUID) (*entities.Zone, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}

	zone, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get zone: %w", err)
	}
	return zone, nil
}

func (s *Zone) ListZones(ctx context.Context, principal *entities.Principal, status *entities.ZoneStatus) ([]entities.Zone, error) {
	if err := requireAdmin(principal); err != nil {
		return nil, err
	}
	if status != nil && !isValidStatus(*status) {
		return nil, ErrInvalidStatus
	}

	zones, err := s.repository.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}
	return zones, nil
}

// Resolve выбирает активную зону, содержащую точку.
// Список приходит отсортированным по приоритету, цене и id, поэтому
// первая подходящая зона и есть ответ.
func (s *Zone) Resolve(ctx context.Context, point geo.Point) (*entities.Zone, error) {
	if !point.Valid() {
		return nil, ErrInvalidCoordinates
	}

	zones, err := s.active.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active zones: %w", err)
	}

	for i := range zones {
		if geo.ContainsPoint(zones[i].Polygon, point) {
			zone := zones[i]
			return &zone, nil
		}
	}

	return nil, ErrNoZoneForPoint
}

func (s *Zone) loadActive(ctx context.Context) ([]entities.Zone, error) {
	status := entities.ZoneActive
	return s.repository.List(ctx, &status)
}

func requireAdmin(principal *entities.Principal) error {
	if principal == nil {
		return ErrUnauthenticated
	}
	if principal.Role != entities.RoleAdmin {
		return ErrForbidden
	}
	return nil
}
