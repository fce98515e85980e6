package delivery_deadline

import (
	"time"

	"marketplace/internal/entities"
)

// окно доставки от момента, когда водитель принял заказ
var defaultWindows = map[entities.VehicleType]time.Duration{
	entities.OnFoot:  45 * time.Minute,
	entities.Scooter: 30 * time.Minute,
	entities.Car:     25 * time.Minute,
}

type DeliveryTimeFactory struct {
	windows  map[entities.VehicleType]time.Duration
	fallback time.Duration
}

type Option func(*DeliveryTimeFactory)

// WithWindow переопределяет окно для одного типа транспорта.
func WithWindow(vehicle entities.VehicleType, window time.Duration) Option {
	return func(f *DeliveryTimeFactory) {
		f.windows[vehicle] = window
	}
}

func New(opts ...Option) *DeliveryTimeFactory {
	f := &DeliveryTimeFactory{
		windows:  make(map[entities.VehicleType]time.Duration, len(defaultWindows)),
		fallback: defaultWindows[entities.DefaultVehicleType],
	}
	for vehicle, window := range defaultWindows {
		f.windows[vehicle] = window
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CalculateDeadline - крайний срок доставки. Неизвестный транспорт считается как транспорт по умолчанию.
func (f *DeliveryTimeFactory) CalculateDeadline(vehicleType entities.VehicleType, acceptedAt time.Time) time.Time {
	window, ok := f.windows[vehicleType]
	if !ok {
		window = f.fallback
	}
	return acceptedAt.Add(window)
}
