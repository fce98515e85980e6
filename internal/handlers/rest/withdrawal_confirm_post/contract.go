//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=withdrawal_confirm_post_test
package withdrawal_confirm_post

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
	ConfirmWithdrawal(ctx context.Context, principal *entities.Principal, transactionID uuid.UUID, status entities.TransactionStatus) (*entities.Transaction, error)
}
