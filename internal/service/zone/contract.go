//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_test
package zone

import (
	"context"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, id uuid.UUID, zoneModifyEntity entities.ZoneModify) (*entities.Zone, error)
	Update(ctx context.Context, zoneModifyEntity entities.ZoneModify) (*entities.Zone, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Zone, error)
	List(ctx context.Context, status *entities.ZoneStatus) ([]entities.Zone, error)
}
