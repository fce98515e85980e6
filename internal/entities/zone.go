package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/pkg/geo"
)

type ZoneStatus string

const (
	ZoneActive   ZoneStatus = "ACTIVE"
	ZoneInactive ZoneStatus = "INACTIVE"
)

func (s ZoneStatus) String() string {
	return string(s)
}

type Zone struct {
	ID            uuid.UUID
	Name          string
	Polygon       []geo.Point
	Status        ZoneStatus
	Priority      int
	DeliveryFee   decimal.Decimal
	Neighborhoods []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ZoneModify struct {
	ID            *uuid.UUID
	Name          *string
	Polygon       []geo.Point
	Status        *ZoneStatus
	Priority      *int
	DeliveryFee   *decimal.Decimal
	Neighborhoods []string
}
