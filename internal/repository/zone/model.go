package zone

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ZoneDB struct {
	ID            uuid.UUID
	Name          string
	Polygon       []PointDB
	Status        string
	Priority      int
	DeliveryFee   decimal.Decimal
	Neighborhoods []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PointDB - вершина полигона в jsonb.
type PointDB struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type ZoneModifyDB struct {
	ID            *uuid.UUID
	Name          *string
	Polygon       []PointDB
	Status        *string
	Priority      *int
	DeliveryFee   *decimal.Decimal
	Neighborhoods []string
}
