//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_tracking_post_test
package order_tracking_post

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
	GetTracking(ctx context.Context, principal *entities.Principal, orderID uuid.UUID) (*entities.Tracking, error)
}
