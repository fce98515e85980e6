package order

import (
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/geo"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	order := &entities.Order{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		MerchantID:      o.MerchantID,
		MerchantOwnerID: o.MerchantOwnerID,
		DriverID:        o.DriverID,
		ZoneID:          o.ZoneID,
		Status:          entities.OrderStatus(o.Status),
		PickupCode:      o.PickupCode,
		DeliveryCode:    o.DeliveryCode,
		Prices: entities.OrderPrices{
			Subtotal:    o.Subtotal,
			DeliveryFee: o.DeliveryFee,
			Discount:    o.Discount,
			Total:       o.Total,
		},
		PaymentMethod: entities.PaymentMethod(o.PaymentMethod),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		DeliveryLocation: geo.Point{
			Latitude:  o.DeliveryLatitude,
			Longitude: o.DeliveryLongitude,
		},
		DeliveryAddress:         o.DeliveryAddress,
		DriverCurrentLocation:   toLocation(o.DriverLat, o.DriverLng, o.DriverLocationAt),
		DriverLocationUpdatedAt: o.DriverLocationAt,
		DriverStartDeliveryLocation: toLocation(
			o.DriverStartLat, o.DriverStartLng, o.DriverStartAt,
		),
		DeliveryDeadline: o.DeliveryDeadline,
		CompletedAt:      o.CompletedAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
		Items:            make([]entities.OrderItem, 0, len(items)),
	}

	for _, item := range items {
		order.Items = append(order.Items, entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return order
}

func toLocation(lat, lng *float64, at *time.Time) *entities.DriverLocation {
	if lat == nil || lng == nil || at == nil {
		return nil
	}

	return &entities.DriverLocation{
		Point: geo.Point{
			Latitude:  *lat,
			Longitude: *lng,
		},
		Timestamp: *at,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i], nil)
	}
	return result
}
