package order_handle

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/service/event"
)

type StatusHandlerFactory struct {
	walletService event.WalletService
}

func NewStatusHandlerFactory(walletService event.WalletService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		walletService: walletService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatus) (event.ExecuteFn, error) {
	switch {
	case status == entities.OrderCompleted:
		return f.completedHandler, nil
	case status.IsRefundable():
		return f.refundHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", event.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, orderID uuid.UUID) error {
	paid, err := f.walletService.HasPayout(ctx, orderID)
	if err != nil {
		return fmt.Errorf("check payout for completed order %s: %w", orderID, err)
	}
	if !paid {
		return fmt.Errorf("%w: order %s", event.ErrMissingPayout, orderID)
	}
	return nil
}

func (f *StatusHandlerFactory) refundHandler(ctx context.Context, orderID uuid.UUID) error {
	_, err := f.walletService.RefundOrder(ctx, orderID)
	if err != nil {
		return fmt.Errorf("refund wallet payment for order %s: %w", orderID, err)
	}
	return nil
}
