//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_withdrawal_post_test
package driver_withdrawal_post

import (
	"context"

	"github.com/shopspring/decimal"
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
	Withdraw(ctx context.Context, principal *entities.Principal, amount decimal.Decimal) (*entities.Transaction, error)
}
