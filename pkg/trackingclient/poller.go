package trackingclient

import (
	"context"
	"sync"
	"time"
)

const defaultErrorInterval = 15 * time.Second

type Fetcher interface {
	FetchTracking(ctx context.Context, orderID string) (*Tracking, error)
}

// Policy возвращает интервал опроса для статуса, 0 - опрос не нужен.
type Policy func(status string) time.Duration

// ServerPolicy берет интервал из ответа сервера.
func ServerPolicy(tracking *Tracking) time.Duration {
	return time.Duration(tracking.PollIntervalMs) * time.Millisecond
}

type Options struct {
	// Если nil, интервал берется из pollIntervalMs ответа.
	Policy Policy

	// Интервал после ошибки, пока статус заказа неизвестен.
	ErrorInterval time.Duration

	OnUpdate func(*Tracking)
	OnError  func(error)
}

// Poller опрашивает трекинг одного заказа. Одновременно в полете не больше одного запроса.
type Poller struct {
	fetcher Fetcher
	orderID string
	opts    Options

	wake chan struct{}

	mu         sync.Mutex
	enabled    bool
	background bool
	seq        uint64
	cancel     context.CancelFunc
	interval   time.Duration
}

func NewPoller(fetcher Fetcher, orderID string, opts Options) *Poller {
	if opts.ErrorInterval <= 0 {
		opts.ErrorInterval = defaultErrorInterval
	}

	return &Poller{
		fetcher: fetcher,
		orderID: orderID,
		opts:    opts,
		wake:    make(chan struct{}, 1),
		enabled: true,
	}
}

// Run блокируется до отмены ctx или перехода заказа в статус без опроса.
// Первый запрос уходит сразу. Выключенный или фоновый поллер ждет
// SetEnabled(true) / SetBackground(false) и затем сразу делает запрос.
func (p *Poller) Run(ctx context.Context) error {
	defer p.cancelInflight()

	for {
		enabled, background := p.state()
		if !enabled || background {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-p.wake:
				continue
			}
		}

		tracking, current, err := p.fetch(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !current {
			// результат устарел: состояние поменялось во время запроса
			continue
		}

		var next time.Duration
		if err != nil {
			p.report(err)
			next = p.lastInterval()
			if next <= 0 {
				next = p.opts.ErrorInterval
			}
		} else {
			if p.opts.OnUpdate != nil {
				p.opts.OnUpdate(tracking)
			}
			next = p.intervalFor(tracking)
			p.setInterval(next)
			if next <= 0 {
				return nil
			}
		}

		timer := time.NewTimer(next)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-p.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// SetEnabled(false) приостанавливает опрос и отменяет запрос в полете,
// SetEnabled(true) возобновляет его с немедленным запросом. Run при этом
// не завершается, для остановки отменяется его ctx.
func (p *Poller) SetEnabled(enabled bool) {
	p.mu.Lock()
	changed := p.enabled != enabled
	p.enabled = enabled
	if changed {
		p.invalidateLocked()
	}
	p.mu.Unlock()

	if changed {
		p.notify()
	}
}

// SetBackground(true) ставит опрос на паузу, SetBackground(false) возобновляет его с немедленным запросом.
func (p *Poller) SetBackground(background bool) {
	p.mu.Lock()
	changed := p.background != background
	p.background = background
	if changed {
		p.invalidateLocked()
	}
	p.mu.Unlock()

	if changed {
		p.notify()
	}
}

func (p *Poller) fetch(ctx context.Context) (*Tracking, bool, error) {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	fetchCtx, cancel := context.WithCancel(ctx)
	p.seq++
	seq := p.seq
	p.cancel = cancel
	p.mu.Unlock()

	defer cancel()

	tracking, err := p.fetcher.FetchTracking(fetchCtx, p.orderID)

	p.mu.Lock()
	current := seq == p.seq
	if current {
		p.cancel = nil
	}
	p.mu.Unlock()

	return tracking, current, err
}

func (p *Poller) intervalFor(tracking *Tracking) time.Duration {
	if p.opts.Policy != nil {
		return p.opts.Policy(tracking.Status)
	}
	return ServerPolicy(tracking)
}

func (p *Poller) report(err error) {
	if p.opts.OnError != nil {
		p.opts.OnError(err)
	}
}

func (p *Poller) state() (bool, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled, p.background
}

func (p *Poller) lastInterval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.interval
}

func (p *Poller) setInterval(d time.Duration) {
	p.mu.Lock()
	p.interval = d
	p.mu.Unlock()
}

func (p *Poller) invalidateLocked() {
	p.seq++
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Poller) cancelInflight() {
	p.mu.Lock()
	p.invalidateLocked()
	p.mu.Unlock()
}

func (p *Poller) notify() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}
