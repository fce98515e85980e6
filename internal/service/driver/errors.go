package driver

import (
	"fmt"

	"marketplace/internal/apperr"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("missing required fields: %w", apperr.InvalidInput)
	ErrInvalidDriverID       = fmt.Errorf("invalid driver id: %w", apperr.InvalidInput)
	ErrInvalidName           = fmt.Errorf("invalid name: %w", apperr.InvalidInput)
	ErrInvalidStatus         = fmt.Errorf("invalid status: %w", apperr.InvalidInput)
	ErrInvalidPhone          = fmt.Errorf("invalid phone: %w", apperr.InvalidInput)
	ErrInvalidVehicle        = fmt.Errorf("invalid vehicle type: %w", apperr.InvalidInput)

	ErrForbidden      = fmt.Errorf("stats of another driver: %w", apperr.Forbidden)
	ErrDriverNotFound = fmt.Errorf("driver not found: %w", apperr.NotFound)
	ErrConflict       = fmt.Errorf("resource already exists: %w", apperr.Conflict)
)

var ErrUnauthenticated = fmt.Errorf("authentication required: %w", apperr.Unauthorized)

// ErrAdminOnly - управление профилями водителей доступно только администратору.
var ErrAdminOnly = fmt.Errorf("drivers are managed by admins: %w", apperr.Forbidden)
