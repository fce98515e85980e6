package outbox_relay

import (
	"context"
	"time"

	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/logger"
)

// maxBatchesPerRun ограничивает один запуск, чтобы задача не занимала весь интервал.
const maxBatchesPerRun = 10

type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

// TTL возвращает интервал между выполнениями задачи.
func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do вычитывает outbox пачками, пока есть события.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	var total int
	for range maxBatchesPerRun {
		published, err := o.service.RelayPending(ctxWithTimeout)
		total += published
		metrics.OrderEventsPublishedTotal.Add(float64(published))
		if err != nil {
			return err
		}
		if published == 0 {
			break
		}
	}

	if total > 0 {
		o.log.With(
			logger.NewField("published", total),
		).Info("outbox relay")
	}

	return nil
}

// SkipWarmup: недоступный брокер не должен блокировать старт API.
func (o *OutboxRelay) SkipWarmup() bool {
	return true
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
