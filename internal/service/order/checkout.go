package order

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/apperr"
	"marketplace/internal/entities"
)

const (
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 4
)

// Checkout создает заказ в статусе PENDING. Цены берутся из каталога,
// стоимость доставки из зоны, в которую попадает адрес.
// Оплата кошельком списывается в той же транзакции.
func (s *Order) Checkout(ctx context.Context, principal *entities.Principal, checkout entities.Checkout) (*entities.Order, error) {
	if principal == nil {
		return nil, ErrUnauthenticated
	}
	if principal.Role != entities.RoleCustomer {
		return nil, ErrForbidden
	}

	items, err := normalizeItems(checkout.Items)
	if err != nil {
		return nil, err
	}
	if !checkout.DeliveryLocation.Valid() {
		return nil, ErrInvalidCoordinates
	}
	if strings.TrimSpace(checkout.DeliveryAddress) == "" {
		return nil, ErrInvalidAddress
	}
	if !checkout.PaymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	merchant, err := s.catalog.GetMerchant(ctx, checkout.MerchantID)
	if err != nil {
		return nil, fmt.Errorf("get merchant: %w", err)
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products, err := s.catalog.GetProducts(ctx, merchant.ID, ids)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}

	zone, err := s.zones.Resolve(ctx, checkout.DeliveryLocation)
	if err != nil {
		if errors.Is(err, apperr.NotFound) {
			return nil, ErrOutsideDeliveryZone
		}
		return nil, fmt.Errorf("resolve zone: %w", err)
	}

	now := time.Now().UTC()
	o := &entities.Order{
		ID:               uuid.New(),
		CustomerID:       principal.UserID,
		MerchantID:       merchant.ID,
		MerchantOwnerID:  merchant.OwnerUserID,
		ZoneID:           &zone.ID,
		Status:           entities.OrderPending,
		PaymentMethod:    checkout.PaymentMethod,
		PaymentStatus:    entities.PaymentPending,
		DeliveryLocation: checkout.DeliveryLocation,
		DeliveryAddress:  strings.TrimSpace(checkout.DeliveryAddress),
		CreatedAt:        now,
		UpdatedAt:        now,
		Items:            make([]entities.OrderItem, 0, len(items)),
	}

	subtotal := decimal.Zero
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok || !product.Available {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, item.ProductID)
		}

		o.Items = append(o.Items, entities.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		subtotal = subtotal.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	o.Prices = entities.OrderPrices{
		Subtotal:    subtotal,
		DeliveryFee: zone.DeliveryFee,
		Discount:    decimal.Zero,
		Total:       subtotal.Add(zone.DeliveryFee),
	}

	if o.PickupCode, err = generateCode(); err != nil {
		return nil, err
	}
	if o.DeliveryCode, err = generateCode(); err != nil {
		return nil, err
	}

	if o.PaymentMethod == entities.PaymentWallet {
		o.PaymentStatus = entities.PaymentPaid
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Create(ctx, o); err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		if o.PaymentMethod == entities.PaymentWallet {
			if err := s.wallet.ChargeOrder(ctx, o.CustomerID, o.ID, o.Prices.Total); err != nil {
				return fmt.Errorf("charge order: %w", err)
			}
		}

		_, err := s.outbox.Enqueue(ctx, entities.OrderEvent{
			OrderID:    o.ID,
			Status:     o.Status,
			ActorID:    principal.UserID,
			ActorRole:  principal.Role,
			OccurredAt: now,
		})
		if err != nil {
			return fmt.Errorf("enqueue order event: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return o, nil
}

// normalizeItems схлопывает повторяющиеся товары.
func normalizeItems(items []entities.CheckoutItem) ([]entities.CheckoutItem, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	index := make(map[uuid.UUID]int, len(items))
	result := make([]entities.CheckoutItem, 0, len(items))
	for _, item := range items {
		if item.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}

		if i, ok := index[item.ProductID]; ok {
			result[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductID] = len(result)
		result = append(result, item)
	}

	return result, nil
}

func generateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}

	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
