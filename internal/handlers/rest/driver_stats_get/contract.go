//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_stats_get_test
package driver_stats_get

import (
	"context"

	"github.com/google/uuid"
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
	GetStats(ctx context.Context, principal *entities.Principal, driverID uuid.UUID) (*entities.DriverStats, error)
}
