package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
	"marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	healthCheckPeriod = 30 * time.Second

	connectInitialInterval = 2 * time.Second
	connectMaxInterval     = 20 * time.Second
	connectMaxElapsedTime  = 90 * time.Second
)

// NewConnPool поднимает пул и дожидается, пока база начнёт отвечать.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := newPoolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("component", "postgres"),
		logger.NewField("addr", net.JoinHostPort(cfg.Host, cfg.Port)),
		logger.NewField("db", cfg.DBName),
		logger.NewField("max_conns", poolCfg.MaxConns),
	)

	if err := waitForDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

func newPoolConfig(cfg *config.Database) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = int32(cfg.MinConns)
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	poolCfg.HealthCheckPeriod = healthCheckPeriod

	return poolCfg, nil
}

// DSN собирает строку подключения; логин и пароль экранируются.
func DSN(cfg *config.Database) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     net.JoinHostPort(cfg.Host, cfg.Port),
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

func waitForDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	r := backoff_adapter.New(retrier.Config{
		InitialInterval: connectInitialInterval,
		MaxInterval:     connectMaxInterval,
		MaxElapsedTime:  connectMaxElapsedTime,
		Randomization:   0.3,
		Multiplier:      2,
	})

	attempts := 0
	err := r.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempts++
		if err := pool.Ping(ctx); err != nil {
			log.Warn("postgres is not ready yet",
				logger.NewField("attempt", attempts),
				logger.NewField("error", err),
			)
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("postgres unreachable after %d attempts: %w", attempts, err)
	}

	log.Info("postgres connected", logger.NewField("attempts", attempts))
	return nil
}
