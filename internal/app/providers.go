package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/handlers/tasks/stale_tracking"
	"marketplace/internal/handlers/tasks/wallet_reconcile"
	"marketplace/internal/pkg/auth"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/delivery_deadline"
	"marketplace/internal/pkg/factory/order_handle"
	catalogRepo "marketplace/internal/repository/catalog"
	driverRepo "marketplace/internal/repository/driver"
	historyRepo "marketplace/internal/repository/history"
	orderRepo "marketplace/internal/repository/order"
	outboxRepo "marketplace/internal/repository/outbox"
	walletRepo "marketplace/internal/repository/wallet"
	zoneRepo "marketplace/internal/repository/zone"
	driverService "marketplace/internal/service/driver"
	eventService "marketplace/internal/service/event"
	orderService "marketplace/internal/service/order"
	outboxService "marketplace/internal/service/outbox"
	trackingService "marketplace/internal/service/tracking"
	walletService "marketplace/internal/service/wallet"
	zoneService "marketplace/internal/service/zone"
	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

func provideDeliveryTimeFactory() *delivery_deadline.DeliveryTimeFactory {
	return delivery_deadline.New()
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideAuthenticator(cfg *config.Config) *auth.Authenticator {
	return auth.New(cfg.Auth.JWTSecret)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideZoneRepository(querier *querier.Querier) *zoneRepo.Repository {
	return zoneRepo.New(querier)
}

func provideWalletRepository(querier *querier.Querier) *walletRepo.Repository {
	return walletRepo.New(querier)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideHistoryRepository(querier *querier.Querier) *historyRepo.Repository {
	return historyRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideServiceWallet(
	repository walletService.Repository,
	orders walletService.OrderRepository,
	txManager walletService.TxManager,
) *walletService.Wallet {
	return walletService.New(repository, orders, txManager)
}

func provideServiceZone(repository zoneService.Repository, cfg *config.Config) *zoneService.Zone {
	return zoneService.New(repository, cfg.Cache.ZonesTTL)
}

func provideServiceDriver(
	repository driverService.Repository,
	orders driverService.OrderRepository,
	wallet driverService.WalletService,
) *driverService.Driver {
	return driverService.New(repository, orders, wallet)
}

func provideServiceOrder(
	repository orderService.Repository,
	catalog orderService.CatalogRepository,
	drivers orderService.DriverRepository,
	outbox orderService.OutboxRepository,
	wallet orderService.WalletService,
	zones orderService.ZoneService,
	timeFactory orderService.DeliveryTimeFactory,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(
		repository,
		catalog,
		drivers,
		outbox,
		wallet,
		zones,
		timeFactory,
		txManager,
	)
}

func provideServiceTracking(
	orders trackingService.OrderRepository,
	history trackingService.HistoryRepository,
) *trackingService.Tracking {
	return trackingService.New(orders, history)
}

func provideServiceOutbox(
	repository outboxService.Repository,
	publisher outboxService.Publisher,
	txManager outboxService.TxManager,
	cfg *config.Config,
) *outboxService.Relay {
	return outboxService.New(repository, publisher, txManager, cfg.Tasks.OutboxRelayBatchSize)
}

// provideEventService создает обработчик событий Kafka
func provideEventService(
	history eventService.HistoryRepository,
	handlerFactory eventService.HandlerFactory,
) *eventService.Service {
	return eventService.New(history, handlerFactory)
}

func provideStatusHandlerFactory(wallet eventService.WalletService) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(wallet)
}

func provideOutboxRelayTask(
	log logger.Logger,
	relay outbox_relay.Service,
	cfg *config.Config,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, relay, cfg.Tasks.OutboxRelayInterval)
}

func provideWalletReconcileTask(
	log logger.Logger,
	wallet wallet_reconcile.Service,
	cfg *config.Config,
) *wallet_reconcile.WalletReconcile {
	return wallet_reconcile.NewWalletReconcile(log, wallet, cfg.Tasks.WalletReconcileInterval)
}

func provideStaleTrackingTask(
	log logger.Logger,
	orders stale_tracking.Repository,
	cfg *config.Config,
) *stale_tracking.StaleTracking {
	return stale_tracking.NewStaleTracking(log, orders, cfg.Tasks.StaleTrackingInterval, cfg.Tracking.StaleAfter)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
	walletReconcileTask *wallet_reconcile.WalletReconcile,
	staleTrackingTask *stale_tracking.StaleTracking,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
		walletReconcileTask,
		staleTrackingTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
