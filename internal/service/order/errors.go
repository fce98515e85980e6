package order

import (
	"errors"
	"fmt"

	"marketplace/internal/apperr"
)

var (
	ErrUnauthenticated   = fmt.Errorf("authentication required: %w", apperr.Unauthorized)
	ErrForbidden         = fmt.Errorf("action is not allowed for caller: %w", apperr.Forbidden)
	ErrDriverNotApproved = fmt.Errorf("driver is not approved: %w", apperr.Forbidden)

	ErrOrderNotFound    = fmt.Errorf("order not found: %w", apperr.NotFound)
	ErrMerchantNotFound = fmt.Errorf("merchant not found: %w", apperr.NotFound)

	ErrTerminalState = fmt.Errorf("order is already finished: %w", apperr.InvalidState)
	ErrInvalidState  = fmt.Errorf("order status does not allow this action: %w", apperr.InvalidState)
	ErrInvalidCode   = fmt.Errorf("code does not match: %w", apperr.InvalidCode)

	ErrMissingCode          = fmt.Errorf("code is required: %w", apperr.InvalidInput)
	ErrUnknownAction        = fmt.Errorf("unknown action: %w", apperr.InvalidInput)
	ErrInvalidCoordinates   = fmt.Errorf("invalid coordinates: %w", apperr.InvalidInput)
	ErrEmptyCart            = fmt.Errorf("order has no items: %w", apperr.InvalidInput)
	ErrInvalidQuantity      = fmt.Errorf("invalid item quantity: %w", apperr.InvalidInput)
	ErrProductUnavailable   = fmt.Errorf("product is not available: %w", apperr.InvalidInput)
	ErrInvalidPaymentMethod = fmt.Errorf("invalid payment method: %w", apperr.InvalidInput)
	ErrInvalidAddress       = fmt.Errorf("delivery address is required: %w", apperr.InvalidInput)
	ErrOutsideDeliveryZone  = fmt.Errorf("delivery location is outside of delivery zones: %w", apperr.InvalidInput)

	// Условный UPDATE не затронул строк, причину определяет сервис.
	ErrNotApplied = errors.New("conditional update matched no rows")
)
