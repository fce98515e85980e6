package wallet_reconcile

import (
	"context"
	"time"

	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/logger"
)

type WalletReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewWalletReconcile(log logger.Logger, service Service, interval time.Duration) *WalletReconcile {
	return &WalletReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (w *WalletReconcile) TTL() time.Duration {
	return w.interval
}

// Do сверяет балансы кошельков с журналом транзакций.
// Расхождения только логируются, баланс не исправляется автоматически.
func (w *WalletReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	drifted, err := w.service.CountDrifted(ctxWithTimeout)
	if err != nil {
		return err
	}

	metrics.DriftedWallets.Set(float64(drifted))
	if drifted > 0 {
		w.log.With(
			logger.NewField("drifted_wallets", drifted),
		).Error("wallet balances differ from transaction ledger")
	}

	return nil
}

func (w *WalletReconcile) Info() string {
	return "wallet reconcile"
}
