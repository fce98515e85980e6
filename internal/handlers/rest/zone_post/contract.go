//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_post_test
package zone_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CreateZone(ctx context.Context, principal *entities.Principal, zoneModify entities.ZoneModify) (*entities.Zone, error)
}
