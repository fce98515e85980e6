package entities

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DriverStats struct {
	DriverID            uuid.UUID
	CompletedDeliveries int64
	ActiveDeliveries    int64
	OnTimeDeliveries    int64
	TotalEarnings       decimal.Decimal
}

// OnTimeRate - доля доставок в срок в процентах от завершенных, 0 если завершенных нет.
func (s DriverStats) OnTimeRate() float64 {
	if s.CompletedDeliveries == 0 {
		return 0
	}
	return float64(s.OnTimeDeliveries) / float64(s.CompletedDeliveries) * 100
}
