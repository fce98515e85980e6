package app

import (
	"marketplace/internal/handlers/rest/driver_get"
	"marketplace/internal/handlers/rest/driver_post"
	"marketplace/internal/handlers/rest/driver_put"
	"marketplace/internal/handlers/rest/driver_stats_get"
	"marketplace/internal/handlers/rest/driver_withdrawal_post"
	"marketplace/internal/handlers/rest/drivers_get"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_location_post"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_tracking_post"
	"marketplace/internal/handlers/rest/order_tracking_stream_get"
	"marketplace/internal/handlers/rest/order_transition_post"
	"marketplace/internal/handlers/rest/orders_available_get"
	"marketplace/internal/handlers/rest/wallet_get"
	"marketplace/internal/handlers/rest/wallet_reconcile_get"
	"marketplace/internal/handlers/rest/withdrawal_confirm_post"
	"marketplace/internal/handlers/rest/zone_get"
	"marketplace/internal/handlers/rest/zone_post"
	"marketplace/internal/handlers/rest/zone_put"
	"marketplace/internal/handlers/rest/zone_resolve_get"
	"marketplace/internal/handlers/rest/zones_get"
	"marketplace/internal/pkg/auth"
	eventService "marketplace/internal/service/event"
	"marketplace/pkg/background"
)

type Application struct {
	Authenticator     *auth.Authenticator
	ServiceOrder      ServiceOrder
	ServiceTracking   ServiceTracking
	ServiceDriver     ServiceDriver
	ServiceZone       ServiceZone
	ServiceWallet     ServiceWallet
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_transition_post.Service
	order_location_post.Service
	orders_available_get.Service
}

type ServiceTracking interface {
	order_tracking_post.Service
	order_tracking_stream_get.Service
}

type ServiceDriver interface {
	driver_post.Service
	driver_put.Service
	drivers_get.Service
	driver_get.Service
	driver_stats_get.Service
}

type ServiceZone interface {
	zone_post.Service
	zone_put.Service
	zones_get.Service
	zone_get.Service
	zone_resolve_get.Service
}

type ServiceWallet interface {
	wallet_get.Service
	driver_withdrawal_post.Service
	withdrawal_confirm_post.Service
	wallet_reconcile_get.Service
}

type KafkaWorkerApp struct {
	EventService *eventService.Service
}
