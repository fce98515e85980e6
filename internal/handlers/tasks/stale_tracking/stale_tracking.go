package stale_tracking

import (
	"context"
	"time"

	"marketplace/internal/pkg/metrics"
	"marketplace/pkg/logger"
)

type StaleTracking struct {
	log        logger.Logger
	repository Repository
	interval   time.Duration
	staleAfter time.Duration
	now        func() time.Time
}

func NewStaleTracking(log logger.Logger, repository Repository, interval, staleAfter time.Duration) *StaleTracking {
	return &StaleTracking{
		log:        log,
		repository: repository,
		interval:   interval,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

func (s *StaleTracking) TTL() time.Duration {
	return s.interval
}

// Do считает заказы в пути без свежей позиции водителя и выставляет gauge.
func (s *StaleTracking) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	stale, err := s.repository.CountStaleTracking(ctxWithTimeout, s.now().UTC().Add(-s.staleAfter))
	if err != nil {
		return err
	}

	metrics.StaleTrackingOrders.Set(float64(stale))
	if stale > 0 {
		s.log.With(
			logger.NewField("stale_orders", stale),
			logger.NewField("stale_after", s.staleAfter.String()),
		).Warn("orders on the way without fresh driver location")
	}

	return nil
}

func (s *StaleTracking) Info() string {
	return "stale tracking"
}
