// Package integration_test поднимает общую базу для интеграционных тестов репозиториев.
// Параметры подключения берутся из окружения (Makefile подгружает .env.test).
package integration_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/stretchr/testify/require"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
)

const statementTimeout = 5 * time.Second

// порядок важен только для читаемости, CASCADE снимает зависимости
var marketplaceTables = []string{
	"transactions",
	"wallets",
	"order_status_history",
	"order_events_outbox",
	"order_items",
	"orders",
	"delivery_zones",
	"products",
	"merchants",
	"users",
}

var (
	suiteOnce    sync.Once
	suiteQuerier *querier.Querier
	suiteErr     error
)

func connect() (*querier.Querier, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	log := logger.NewNop()
	pool, err := postgres.NewConnPool(ctx, log, cfg)
	if err != nil {
		return nil, err
	}

	if err := postgres.Migrate(ctx, log, pool, postgres.MigrateUp); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return querier.New(pool, pgxv5.DefaultCtxGetter), nil
}

// GetQuerier возвращает общий querier; база и миграции поднимаются один раз на пакет.
func GetQuerier() *querier.Querier {
	suiteOnce.Do(func() {
		suiteQuerier, suiteErr = connect()
	})
	if suiteErr != nil {
		panic(suiteErr)
	}
	return suiteQuerier
}

// SetupDB выполняет фикстуры теста. Пустая строка - только проверка соединения.
func SetupDB(t *testing.T, fixtures string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), statementTimeout)
	defer cancel()

	q := GetQuerier()
	if strings.TrimSpace(fixtures) == "" {
		_, err := q.Exec(ctx, "SELECT 1")
		require.NoError(t, err)
		return
	}

	_, err := q.Exec(ctx, fixtures)
	require.NoError(t, err, "fixtures")
}

// TeardownDB очищает все таблицы маркетплейса между тестами.
func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), statementTimeout)
	defer cancel()

	stmt := "TRUNCATE TABLE " + strings.Join(marketplaceTables, ", ") + " RESTART IDENTITY CASCADE"
	_, err := GetQuerier().Exec(ctx, stmt)
	require.NoError(t, err)
}
