package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"marketplace/internal/app"
	orderstatushandler "marketplace/internal/handlers/kafka-consumer/order_status_changed"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
)

const (
	drainDelay            = 5 * time.Second
	probeShutdownTimeout  = 10 * time.Second
	systemMetricsInterval = 15 * time.Second
)

func main() {
	if err := dotenv.ApplyFlags(os.Args[1:]); err != nil {
		stdlog.Fatalf("flags: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"), "worker-order-status-changed")
	if err != nil {
		stdlog.Fatalf("logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	var log logger.Logger = zapLogger

	if err := loadEnvFile(log); err != nil {
		log.Error("load .env", logger.NewField("error", err))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", logger.NewField("error", err))
		return
	}

	if err := run(context.Background(), log, cfg); err != nil {
		log.Error("worker failed", logger.NewField("error", err))
		return
	}
}

func loadEnvFile(log logger.Logger) error {
	if _, err := os.Stat(".env"); err != nil {
		log.Warn("no .env file, reading process environment only")
		return nil
	}
	return dotenv.Load()
}

// run держит два долгоживущих процесса: consumer group и http пробы.
// Сигнал сначала снимает readiness, потом останавливает чтение топика.
//
//nolint:contextcheck // контексты остановки намеренно не наследуют сигнальный
func run(ctx context.Context, log logger.Logger, cfg *config.Config) error {
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := postgres.NewConnPool(sigCtx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	workerApp, err := app.InitializeKafkaWorkerApp(sigCtx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("wire worker: %w", err)
	}

	handler := orderstatushandler.New(log, workerApp.EventService, cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout)

	consumer, err := kafka.NewConsumer(sigCtx, log, &cfg.Kafka, handler)
	if err != nil {
		return fmt.Errorf("kafka consumer: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(sigCtx, systemMetricsInterval)

	var shuttingDown atomic.Bool
	probes := &http.Server{
		Addr:              ":" + cfg.Kafka.PortHealthcheck,
		Handler:           probeRouter(&shuttingDown, pool),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	// consumeCtx живет дольше сигнального: после SIGTERM даем пробам время снять трафик
	consumeCtx, stopConsuming := context.WithCancel(context.Background())
	defer stopConsuming()

	group, groupCtx := errgroup.WithContext(context.Background())

	group.Go(func() error {
		log.Info("probe server listening", logger.NewField("port", cfg.Kafka.PortHealthcheck))
		if err := probes.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("probe server: %w", err)
		}
		return nil
	})

	group.Go(func() error {
		log.Info("consuming order events",
			logger.NewField("topic", cfg.Kafka.Topic),
			logger.NewField("group", cfg.Kafka.ConsumerGroup),
		)
		err := consumer.Start(consumeCtx)
		if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, sarama.ErrClosedConsumerGroup) {
			return nil
		}
		return err
	})

	group.Go(func() error {
		select {
		case <-sigCtx.Done():
			log.Info("shutdown signal received")
		case <-groupCtx.Done():
		}

		shuttingDown.Store(true)
		if sigCtx.Err() != nil {
			time.Sleep(drainDelay)
		}

		stopConsuming()
		if err := consumer.Close(); err != nil {
			log.Error("close consumer", logger.NewField("error", err))
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), probeShutdownTimeout)
		defer cancel()
		return probes.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		return err
	}

	log.Info("worker stopped")
	return nil
}

func probeRouter(shuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()
	router.Handle("/healthcheck", healthcheck_head.New(shuttingDown, db)).Methods(http.MethodHead, http.MethodGet)
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return router
}
