package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderEventsPublishedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Order status events relayed from the outbox to Kafka",
		},
	)

	OrderEventsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_processed_total",
			Help: "Order status events consumed by the worker by status and result",
		},
		[]string{"status", "result"},
	)

	MissingPayoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "order_missing_payouts_total",
			Help: "Completed orders observed without a driver payout",
		},
	)

	DriftedWallets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wallets_drifted",
			Help: "Wallets whose balance differs from the transaction ledger",
		},
	)

	StaleTrackingOrders = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "orders_stale_tracking",
			Help: "Orders on the way without a fresh driver location",
		},
	)

	TrackingStreams = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "tracking_streams_active",
			Help: "Open server-sent event tracking streams",
		},
	)
)
