package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/dotenv"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/logger/zap_adapter"
)

func main() {
	command := pflag.StringP("command", "c", string(postgres.MigrateUp), "up | down | status | version")
	pflag.Parse()

	zapLogger, err := zap_adapter.NewZapAdapter(os.Getenv("LOG_LEVEL"), "migrate")
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			appLogger.Error("failed to load .env file", logger.NewField("error", err))
			os.Exit(1)
		}
	}

	if err := run(appLogger, postgres.MigrateCommand(*command)); err != nil {
		appLogger.Error("migrate failed", logger.NewField("error", err))
		os.Exit(1)
	}
}

func run(log logger.Logger, command postgres.MigrateCommand) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.LoadDatabase()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	return postgres.Migrate(ctx, log, pool, command)
}
