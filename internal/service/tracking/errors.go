package tracking

import (
	"fmt"

	"marketplace/internal/apperr"
)

var (
	ErrUnauthenticated = fmt.Errorf("authentication required: %w", apperr.Unauthorized)

	// Чужой заказ неотличим от несуществующего.
	ErrOrderNotFound = fmt.Errorf("order not found: %w", apperr.NotFound)
)
