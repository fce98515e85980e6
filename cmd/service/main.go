package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "marketplace/internal/app"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/driver_get"
	"marketplace/internal/handlers/rest/driver_post"
	"marketplace/internal/handlers/rest/driver_put"
	"marketplace/internal/handlers/rest/driver_stats_get"
	"marketplace/internal/handlers/rest/driver_withdrawal_post"
	"marketplace/internal/handlers/rest/drivers_get"
	"marketplace/internal/handlers/rest/healthcheck_head"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_location_post"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_tracking_post"
	"marketplace/internal/handlers/rest/order_tracking_stream_get"
	"marketplace/internal/handlers/rest/order_transition_post"
	"marketplace/internal/handlers/rest/orders_available_get"
	"marketplace/internal/handlers/rest/ping_get"
	"marketplace/internal/handlers/rest/wallet_get"
	"marketplace/internal/handlers/rest/wallet_reconcile_get"
	"marketplace/internal/handlers/rest/withdrawal_confirm_post"
	"marketplace/internal/handlers/rest/zone_get"
	"marketplace/internal/handlers/rest/zone_post"
	"marketplace/internal/handlers/rest/zone_put"
	"marketplace/internal/handlers/rest/zone_resolve_get"
	"marketplace/internal/handlers/rest/zones_get"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/grpchealth"
	"marketplace/internal/pkg/kafka"
	metrics_system "marketplace/internal/pkg/metrics"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/pkg/middlewares/graceful_shutdown"
	"marketplace/internal/pkg/middlewares/metrics"
	"marketplace/internal/pkg/middlewares/rate_limiter"
	"marketplace/internal/pkg/middlewares/timeout"
	"marketplace/internal/pkg/postgres"
	"marketplace/internal/service/tracking"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/token_bucket"
)

// rateLimiterIdleTTL - через сколько простоя ведро клиента удаляется.
const rateLimiterIdleTTL = 10 * time.Minute

func main() {
	// флаги пишутся в окружение раньше .env, godotenv не перезаписывает заданные переменные
	if err := dotenv.ApplyFlags(os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to parse flags: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"), "marketplace")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting marketplace application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod        = 15 * time.Second
		shutdownHardPeriod    = 3 * time.Second
		readinessDrainDelay   = 5 * time.Second
		systemMetricsInterval = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsAutoApply {
		if err := postgres.Migrate(ctx, log, pool, postgres.MigrateUp); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	producer, err := kafka.NewProducer(ctx, log, &cfg.Kafka, kafka.ParseBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}
	defer func() {
		if err := producer.Close(); err != nil {
			runLog.Error("failed to close kafka producer",
				logger.NewField("error", err),
			)
		}
	}()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector(ctx, systemMetricsInterval)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// streamsCtx отменяется в начале server.Shutdown(), чтобы SSE потоки не держали остановку
	streamsCtx, stopStreams := context.WithCancel(context.Background())
	defer stopStreams()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, streamsCtx, log, &isShuttingDown, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// SSE поток живет дольше обычного запроса, таймауты обычных ручек держит middleware
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	server.RegisterOnShutdown(stopStreams)

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// grpc health сервер
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Server.GRPCHealthPort))
	if err != nil {
		return fmt.Errorf("grpc health listen: %w", err)
	}

	healthServer := grpchealth.New(log)
	healthServerErr := make(chan error, 1)
	go func() {
		defer close(healthServerErr)
		if err := healthServer.Serve(grpcListener); err != nil {
			healthServerErr <- err
		}
	}()
	// grpc health сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-healthServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.SetServing(false)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	if healthErr := healthServer.Shutdown(shutdownCtx); healthErr != nil {
		runLog.Error("grpc health server shutdown error", logger.NewField("error", healthErr))
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	// фоновые задачи остановлены отменой ctx, ждем их до закрытия продюсера
	businessApp.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx, streamsCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, db healthcheck_head.Pinger, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(log, isShuttingDown, ongoingCtx))
	router.Use(metrics.Middleware(log))
	limiter := token_bucket.NewKeyed(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst), rateLimiterIdleTTL)
	if err := rate_limiter.RegisterTrackedClients(prometheus.DefaultRegisterer, limiter); err != nil {
		log.Warn("rate limiter gauge not registered", logger.NewField("error", err))
	}
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, limiter))
	router.Use(auth.Middleware(log, app.Authenticator))

	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// поток без timeout middleware, живет до терминального статуса или отключения клиента
	streamHandler := order_tracking_stream_get.New(log, app.ServiceTracking, tracking.StreamInterval)
	router.Handle("/api/v1/orders/{id}/tracking/stream",
		graceful_shutdown.StreamMiddleware(streamsCtx)(streamHandler)).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(timeout.Middleware(log, cfg.RequestTimeout))

	api.Handle("/orders", order_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/orders/{id}", order_get.New(log, app.ServiceOrder)).Methods("GET")
	api.Handle("/orders/{id}/tracking", order_tracking_post.New(log, app.ServiceTracking)).Methods("POST")

	api.Handle("/merchant/orders/{id}/{action}",
		order_transition_post.New(log, app.ServiceOrder, entities.RoleMerchant)).Methods("POST")

	api.Handle("/driver/orders/available", orders_available_get.New(log, app.ServiceOrder)).Methods("GET")
	// location раньше {action}, иначе маршрут перехватит переход
	api.Handle("/driver/orders/{id}/location", order_location_post.New(log, app.ServiceOrder)).Methods("POST")
	api.Handle("/driver/orders/{id}/{action}",
		order_transition_post.New(log, app.ServiceOrder, entities.RoleDriver)).Methods("POST")
	api.Handle("/driver/stats", driver_stats_get.New(log, app.ServiceDriver)).Methods("GET")
	api.Handle("/driver/withdrawal", driver_withdrawal_post.New(log, app.ServiceWallet)).Methods("POST")

	api.Handle("/wallet", wallet_get.New(log, app.ServiceWallet)).Methods("GET")

	api.Handle("/drivers", driver_post.New(log, app.ServiceDriver)).Methods("POST")
	api.Handle("/zones/resolve", zone_resolve_get.New(log, app.ServiceZone)).Methods("GET")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Handle("/drivers", drivers_get.New(log, app.ServiceDriver)).Methods("GET")
	admin.Handle("/drivers/{id}", driver_get.New(log, app.ServiceDriver)).Methods("GET")
	admin.Handle("/drivers/{id}", driver_put.New(log, app.ServiceDriver)).Methods("PUT")

	admin.Handle("/zones", zone_post.New(log, app.ServiceZone)).Methods("POST")
	admin.Handle("/zones", zones_get.New(log, app.ServiceZone)).Methods("GET")
	admin.Handle("/zones/{id}", zone_get.New(log, app.ServiceZone)).Methods("GET")
	admin.Handle("/zones/{id}", zone_put.New(log, app.ServiceZone)).Methods("PUT")

	admin.Handle("/withdrawals/{id}/confirm", withdrawal_confirm_post.New(log, app.ServiceWallet)).Methods("POST")
	admin.Handle("/wallets/{id}/reconcile", wallet_reconcile_get.New(log, app.ServiceWallet)).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
