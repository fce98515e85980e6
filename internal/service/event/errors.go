package event

import (
	"errors"
	"fmt"

	"marketplace/internal/apperr"
)

var (
	ErrInvalidEvent    = fmt.Errorf("order id and status are required: %w", apperr.InvalidInput)
	ErrUndefinedStatus = errors.New("undefined order status")

	// Заказ завершен, а выплаты водителю нет.
	ErrMissingPayout = errors.New("completed order has no driver payout")
)
