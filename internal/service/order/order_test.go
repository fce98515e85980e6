package order_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
	"marketplace/pkg/geo"
)

type mock struct {
	*MockRepository
	*MockCatalogRepository
	*MockDriverRepository
	*MockOutboxRepository
	*MockWalletService
	*MockZoneService
	*MockDeliveryTimeFactory
	*MockTxManager
}

func newMock(ctrl *gomock.Controller) *mock {
	return &mock{
		MockRepository:          NewMockRepository(ctrl),
		MockCatalogRepository:   NewMockCatalogRepository(ctrl),
		MockDriverRepository:    NewMockDriverRepository(ctrl),
		MockOutboxRepository:    NewMockOutboxRepository(ctrl),
		MockWalletService:       NewMockWalletService(ctrl),
		MockZoneService:         NewMockZoneService(ctrl),
		MockDeliveryTimeFactory: NewMockDeliveryTimeFactory(ctrl),
		MockTxManager:           NewMockTxManager(ctrl),
	}
}

func (m *mock) service() *order.Order {
	return order.New(
		m.MockRepository,
		m.MockCatalogRepository,
		m.MockDriverRepository,
		m.MockOutboxRepository,
		m.MockWalletService,
		m.MockZoneService,
		m.MockDeliveryTimeFactory,
		m.MockTxManager,
	)
}

func (m *mock) expectTx() {
	m.MockTxManager.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		})
}

func errorAssertion(expectedError error, expectedErrMsg string) require.ErrorAssertionFunc {
	return func(t require.TestingT, err error, msgAndArgs ...interface{}) {
		require.Error(t, err, msgAndArgs...)

		if expectedError != nil {
			assert.ErrorIs(t, err, expectedError, msgAndArgs...)
		}

		if expectedErrMsg != "" {
			assert.Contains(t, err.Error(), expectedErrMsg, msgAndArgs...)
		}
	}
}

var (
	customerID = uuid.MustParse("10000000-0000-0000-0000-000000000001")
	ownerID    = uuid.MustParse("10000000-0000-0000-0000-000000000002")
	driverID   = uuid.MustParse("10000000-0000-0000-0000-000000000003")
	strangerID = uuid.MustParse("10000000-0000-0000-0000-000000000004")
	merchantID = uuid.MustParse("20000000-0000-0000-0000-000000000001")
	orderID    = uuid.MustParse("40000000-0000-0000-0000-000000000001")

	customer = &entities.Principal{UserID: customerID, Role: entities.RoleCustomer}
	merchant = &entities.Principal{UserID: ownerID, Role: entities.RoleMerchant}
	driver   = &entities.Principal{UserID: driverID, Role: entities.RoleDriver}
	admin    = &entities.Principal{UserID: strangerID, Role: entities.RoleAdmin}

	approvedDriver = &entities.Driver{
		ID:          driverID,
		Name:        "Max Rockatansky",
		Phone:       "+79161234567",
		Status:      entities.DriverApproved,
		VehicleType: entities.Car,
	}
)

func newOrder(status entities.OrderStatus, assigned *uuid.UUID) *entities.Order {
	return &entities.Order{
		ID:              orderID,
		CustomerID:      customerID,
		MerchantID:      merchantID,
		MerchantOwnerID: ownerID,
		DriverID:        assigned,
		Status:          status,
		PickupCode:      "AB12",
		DeliveryCode:    "CD34",
		Prices: entities.OrderPrices{
			Subtotal:    decimal.RequireFromString("20.00"),
			DeliveryFee: decimal.RequireFromString("10.00"),
			Total:       decimal.RequireFromString("30.00"),
		},
		PaymentMethod:    entities.PaymentCash,
		PaymentStatus:    entities.PaymentPending,
		DeliveryLocation: geo.Point{Latitude: 55.76, Longitude: 37.62},
		DeliveryAddress:  "Tverskaya 1",
	}
}

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}
