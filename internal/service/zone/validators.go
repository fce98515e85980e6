package zone

import (
	"strings"

	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/pkg/geo"
)

const minPolygonVertices = 3

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPolygon(polygon []geo.Point) bool {
	if len(polygon) < minPolygonVertices {
		return false
	}
	for _, p := range polygon {
		if !p.Valid() {
			return false
		}
	}
	return true
}

func isValidStatus(status entities.ZoneStatus) bool {
	switch status {
	case entities.ZoneActive, entities.ZoneInactive:
		return true
	default:
		return false
	}
}

func isValidFee(fee decimal.Decimal) bool {
	return !fee.IsNegative()
}

func validateModify(zoneModify entities.ZoneModify) error {
	if zoneModify.Name != nil && !isValidName(*zoneModify.Name) {
		return ErrInvalidName
	}
	if zoneModify.Polygon != nil && !isValidPolygon(zoneModify.Polygon) {
		return ErrInvalidPolygon
	}
	if zoneModify.Status != nil && !isValidStatus(*zoneModify.Status) {
		return ErrInvalidStatus
	}
	if zoneModify.DeliveryFee != nil && !isValidFee(*zoneModify.DeliveryFee) {
		return ErrInvalidFee
	}
	return nil
}
