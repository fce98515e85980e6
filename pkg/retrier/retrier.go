package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type (
	ShouldRetryFunc func(error) bool
	// NotifyFunc вызывается перед каждой паузой: ошибка попытки и время до следующей.
	NotifyFunc func(err error, next time.Duration)
)

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// 0 - без ограничения по числу попыток
	MaxRetries uint64

	// nil - ретраим всё
	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}

// Permanent оборачивает ошибку, которую не нужно ретраить.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string { return p.Err.Error() }

func (p *Permanent) Unwrap() error { return p.Err }
