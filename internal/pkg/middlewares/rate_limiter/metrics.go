package rate_limiter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var RateLimitExceededTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "marketplace",
		Subsystem: "http",
		Name:      "rate_limited_requests_total",
		Help:      "Requests rejected with 429 by the per-client rate limiter",
	},
	[]string{"method", "route"},
)

// TrackedClients отдаёт число клиентов, для которых сейчас хранится ведро.
type TrackedClients interface {
	Len() int
}

// RegisterTrackedClients публикует размер таблицы лимитера как gauge.
func RegisterTrackedClients(reg prometheus.Registerer, limiter TrackedClients) error {
	return reg.Register(prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Namespace: "marketplace",
			Subsystem: "http",
			Name:      "rate_limiter_tracked_clients",
			Help:      "Client addresses with a live token bucket",
		},
		func() float64 { return float64(limiter.Len()) },
	))
}
