//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/handlers/tasks/stale_tracking"
	"marketplace/internal/handlers/tasks/wallet_reconcile"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/delivery_deadline"
	"marketplace/internal/pkg/factory/order_handle"
	"marketplace/internal/pkg/kafka"

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

	"marketplace/pkg/logger"
	"marketplace/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAuthenticator,

		provideOrderRepository,
		provideDriverRepository,
		provideZoneRepository,
		provideWalletRepository,
		provideCatalogRepository,
		provideHistoryRepository,
		provideOutboxRepository,

		provideServiceWallet,
		provideServiceZone,
		provideServiceDriver,
		provideServiceOrder,
		provideServiceTracking,
		provideServiceOutbox,
		provideDeliveryTimeFactory,

		provideOutboxRelayTask,
		provideWalletReconcileTask,
		provideStaleTrackingTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceDriver), new(*driverService.Driver)),
		wire.Bind(new(ServiceZone), new(*zoneService.Zone)),
		wire.Bind(new(ServiceWallet), new(*walletService.Wallet)),

		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(walletService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),

		wire.Bind(new(zoneService.Repository), new(*zoneRepo.Repository)),

		wire.Bind(new(driverService.Repository), new(*driverRepo.Repository)),
		wire.Bind(new(driverService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(driverService.WalletService), new(*walletService.Wallet)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.CatalogRepository), new(*catalogRepo.Repository)),
		wire.Bind(new(orderService.DriverRepository), new(*driverRepo.Repository)),
		wire.Bind(new(orderService.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(orderService.WalletService), new(*walletService.Wallet)),
		wire.Bind(new(orderService.ZoneService), new(*zoneService.Zone)),
		wire.Bind(new(orderService.DeliveryTimeFactory), new(*delivery_deadline.DeliveryTimeFactory)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(trackingService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(trackingService.HistoryRepository), new(*historyRepo.Repository)),

		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*kafka.Producer)),
		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_relay.Service), new(*outboxService.Relay)),
		wire.Bind(new(wallet_reconcile.Service), new(*walletService.Wallet)),
		wire.Bind(new(stale_tracking.Repository), new(*orderRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideWalletRepository,
		provideHistoryRepository,

		provideServiceWallet,
		provideStatusHandlerFactory,
		provideEventService,

		wire.Bind(new(walletService.Repository), new(*walletRepo.Repository)),
		wire.Bind(new(walletService.OrderRepository), new(*orderRepo.Repository)),
		wire.Bind(new(walletService.TxManager), new(*tx.Manager)),

		wire.Bind(new(eventService.WalletService), new(*walletService.Wallet)),
		wire.Bind(new(eventService.HistoryRepository), new(*historyRepo.Repository)),
		wire.Bind(new(eventService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
