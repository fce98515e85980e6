//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=wallet_reconcile_get_test
package wallet_reconcile_get

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
	Reconcile(ctx context.Context, principal *entities.Principal, walletID uuid.UUID) (*entities.WalletReconciliation, error)
}
