package driver

import (
	"time"

	"github.com/google/uuid"
)

type DriverDB struct {
	ID          uuid.UUID
	Name        string
	Phone       string
	Status      string
	VehicleType string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DriverModifyDB struct {
	ID          *uuid.UUID
	Name        *string
	Phone       *string
	Status      *string
	VehicleType *string
}
