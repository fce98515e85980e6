// Package presenter переводит доменные сущности в dto ответов.
package presenter

import (
	"errors"
	"fmt"

	"github.com/AlekSi/pointer"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/pkg/geo"
)

// Order скрывает коды подтверждения от тех, кому они не положены:
// код выдачи видит мерчант, код вручения видит заказчик.
func Order(o *entities.Order, viewer *entities.Principal) dto.Order {
	res := dto.Order{
		Id:                          o.ID,
		CustomerId:                  o.CustomerID,
		MerchantId:                  o.MerchantID,
		DriverId:                    o.DriverID,
		ZoneId:                      o.ZoneID,
		Status:                      o.Status.String(),
		PaymentMethod:               o.PaymentMethod.String(),
		PaymentStatus:               o.PaymentStatus.String(),
		Prices:                      prices(o.Prices),
		DeliveryLocation:            Location(o.DeliveryLocation),
		DeliveryAddress:             o.DeliveryAddress,
		DriverCurrentLocation:       driverLocation(o.DriverCurrentLocation),
		DriverStartDeliveryLocation: driverLocation(o.DriverStartDeliveryLocation),
		DriverLocationUpdatedAt:     o.DriverLocationUpdatedAt,
		DeliveryDeadline:            o.DeliveryDeadline,
		CompletedAt:                 o.CompletedAt,
		CreatedAt:                   o.CreatedAt,
		UpdatedAt:                   o.UpdatedAt,
		Items:                       make([]dto.OrderItem, 0, len(o.Items)),
	}

	for _, item := range o.Items {
		res.Items = append(res.Items, dto.OrderItem{
			ProductId: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	if viewer != nil {
		isAdmin := viewer.Role == entities.RoleAdmin
		if isAdmin || (viewer.Role == entities.RoleMerchant && o.MerchantOwnerID == viewer.UserID) {
			code := o.PickupCode
			res.PickupCode = &code
		}
		if isAdmin || (viewer.Role == entities.RoleCustomer && o.CustomerID == viewer.UserID) {
			code := o.DeliveryCode
			res.DeliveryCode = &code
		}
	}

	return res
}

func Orders(orders []entities.Order, viewer *entities.Principal) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for i := range orders {
		res = append(res, Order(&orders[i], viewer))
	}
	return res
}

func Transition(result *entities.TransitionResult, viewer *entities.Principal) dto.TransitionResponse {
	return dto.TransitionResponse{
		Order:    Order(result.Order, viewer),
		Earnings: result.Earnings,
	}
}

func LocationSnapshot(o *entities.Order) dto.LocationResponse {
	return dto.LocationResponse{
		OrderId:                     o.ID,
		Status:                      o.Status.String(),
		DriverCurrentLocation:       driverLocation(o.DriverCurrentLocation),
		DriverStartDeliveryLocation: driverLocation(o.DriverStartDeliveryLocation),
		DriverLocationUpdatedAt:     o.DriverLocationUpdatedAt,
	}
}

func Tracking(t *entities.Tracking) dto.Tracking {
	res := dto.Tracking{
		OrderId:                     t.OrderID,
		Status:                      t.Status.String(),
		DriverId:                    t.DriverID,
		DriverCurrentLocation:       driverLocation(t.DriverCurrentLocation),
		DriverStartDeliveryLocation: driverLocation(t.DriverStartDeliveryLocation),
		DriverLocationUpdatedAt:     t.DriverLocationUpdatedAt,
		DeliveryLocation:            Location(t.DeliveryLocation),
		RemainingDistanceMeters:     t.RemainingDistanceMeters,
		DeliveryDeadline:            t.DeliveryDeadline,
		PollIntervalSeconds:         int(t.PollInterval.Seconds()),
		Timeline:                    make([]dto.TimelineItem, 0, len(t.Timeline)),
	}

	for _, item := range t.Timeline {
		res.Timeline = append(res.Timeline, dto.TimelineItem{
			Status:  item.Status.String(),
			ActorId: item.ActorID,
			At:      item.At,
		})
	}

	return res
}

func Wallet(w *entities.WalletWithTransactions) dto.Wallet {
	res := dto.Wallet{
		Id:           w.Wallet.ID,
		UserId:       w.Wallet.UserID,
		OwnerRole:    w.Wallet.OwnerRole.String(),
		Balance:      w.Wallet.Balance,
		Transactions: make([]dto.Transaction, 0, len(w.Transactions)),
	}

	for i := range w.Transactions {
		res.Transactions = append(res.Transactions, Transaction(&w.Transactions[i]))
	}

	return res
}

func Transaction(t *entities.Transaction) dto.Transaction {
	return dto.Transaction{
		Id:        t.ID,
		WalletId:  t.WalletID,
		OrderId:   t.OrderID,
		Type:      string(t.Type),
		Status:    t.Status.String(),
		Kind:      string(t.Kind),
		Amount:    t.Amount,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func Reconciliation(r *entities.WalletReconciliation) dto.Reconciliation {
	return dto.Reconciliation{
		WalletId:   r.WalletID,
		Balance:    r.Balance,
		Expected:   r.Expected,
		Consistent: r.Consistent(),
	}
}

func DriverStats(s *entities.DriverStats) dto.DriverStats {
	return dto.DriverStats{
		DriverId:            s.DriverID,
		CompletedDeliveries: s.CompletedDeliveries,
		ActiveDeliveries:    s.ActiveDeliveries,
		OnTimeDeliveries:    s.OnTimeDeliveries,
		OnTimeRate:          s.OnTimeRate(),
		TotalEarnings:       s.TotalEarnings,
	}
}

func Driver(d *entities.Driver) dto.Driver {
	return dto.Driver{
		Id:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		Status:      d.Status.String(),
		VehicleType: d.VehicleType.String(),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func Drivers(drivers []entities.Driver) []dto.Driver {
	res := make([]dto.Driver, 0, len(drivers))
	for i := range drivers {
		res = append(res, Driver(&drivers[i]))
	}
	return res
}

func Zone(z *entities.Zone) dto.Zone {
	neighborhoods := z.Neighborhoods
	if neighborhoods == nil {
		neighborhoods = []string{}
	}

	return dto.Zone{
		Id:            z.ID,
		Name:          z.Name,
		Polygon:       Locations(z.Polygon),
		Status:        z.Status.String(),
		Priority:      z.Priority,
		DeliveryFee:   z.DeliveryFee,
		Neighborhoods: neighborhoods,
		CreatedAt:     z.CreatedAt,
		UpdatedAt:     z.UpdatedAt,
	}
}

func Zones(zones []entities.Zone) []dto.Zone {
	res := make([]dto.Zone, 0, len(zones))
	for i := range zones {
		res = append(res, Zone(&zones[i]))
	}
	return res
}

func Location(p geo.Point) dto.Location {
	return dto.Location{
		Latitude:  pointer.ToFloat64(p.Latitude),
		Longitude: pointer.ToFloat64(p.Longitude),
	}
}

func Locations(points []geo.Point) []dto.Location {
	res := make([]dto.Location, 0, len(points))
	for _, p := range points {
		res = append(res, Location(p))
	}
	return res
}

var ErrMissingCoordinates = errors.New("latitude and longitude are required")

// Point - обратное преобразование для тел запросов. Отсутствующая координата
// не превращается в ноль.
func Point(l dto.Location) (geo.Point, error) {
	if l.Latitude == nil || l.Longitude == nil {
		return geo.Point{}, ErrMissingCoordinates
	}
	return geo.Point{
		Latitude:  *l.Latitude,
		Longitude: *l.Longitude,
	}, nil
}

func Points(locations []dto.Location) ([]geo.Point, error) {
	res := make([]geo.Point, 0, len(locations))
	for i, l := range locations {
		p, err := Point(l)
		if err != nil {
			return nil, fmt.Errorf("polygon vertex %d: %w", i, err)
		}
		res = append(res, p)
	}
	return res, nil
}

func driverLocation(l *entities.DriverLocation) *dto.DriverLocation {
	if l == nil {
		return nil
	}
	return &dto.DriverLocation{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Timestamp: l.Timestamp,
	}
}

func prices(p entities.OrderPrices) dto.OrderPrices {
	return dto.OrderPrices{
		Subtotal:    p.Subtotal,
		DeliveryFee: p.DeliveryFee,
		Discount:    p.Discount,
		Total:       p.Total,
	}
}

