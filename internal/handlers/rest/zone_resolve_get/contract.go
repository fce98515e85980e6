//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=zone_resolve_get_test
package zone_resolve_get

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/geo"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Resolve(ctx context.Context, point geo.Point) (*entities.Zone, error)
}
