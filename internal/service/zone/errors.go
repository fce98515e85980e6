package zone

import (
	"fmt"

	"marketplace/internal/apperr"
)

var (
	ErrMissingRequiredFields = fmt.Errorf("missing required fields: %w", apperr.InvalidInput)
	ErrInvalidName           = fmt.Errorf("invalid name: %w", apperr.InvalidInput)
	ErrInvalidPolygon        = fmt.Errorf("polygon needs at least 3 valid vertices: %w", apperr.InvalidInput)
	ErrInvalidStatus         = fmt.Errorf("invalid status: %w", apperr.InvalidInput)
	ErrInvalidFee            = fmt.Errorf("delivery fee must not be negative: %w", apperr.InvalidInput)
	ErrInvalidCoordinates    = fmt.Errorf("invalid coordinates: %w", apperr.InvalidInput)

	ErrZoneNotFound   = fmt.Errorf("zone not found: %w", apperr.NotFound)
	ErrNoZoneForPoint = fmt.Errorf("no active zone covers the point: %w", apperr.NotFound)
)

var (
	ErrUnauthenticated = fmt.Errorf("authentication required: %w", apperr.Unauthorized)
	ErrForbidden       = fmt.Errorf("zones are managed by admins: %w", apperr.Forbidden)
)
