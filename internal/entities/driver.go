package entities

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleMerchant Role = "MERCHANT"
	RoleDriver   Role = "DRIVER"
	RoleAdmin    Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleMerchant, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

// Principal - аутентифицированный пользователь запроса.
type Principal struct {
	UserID uuid.UUID
	Role   Role
}

type Driver struct {
	ID          uuid.UUID
	Name        string
	Phone       string
	Status      DriverStatus
	VehicleType VehicleType
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type VehicleType string

const (
	OnFoot  VehicleType = "on_foot"
	Scooter VehicleType = "scooter"
	Car     VehicleType = "car"
)

const DefaultVehicleType = OnFoot

func (t VehicleType) String() string {
	return string(t)
}

type DriverStatus string

const (
	DriverPending   DriverStatus = "PENDING"
	DriverApproved  DriverStatus = "APPROVED"
	DriverRejected  DriverStatus = "REJECTED"
	DriverSuspended DriverStatus = "SUSPENDED"
)

const DefaultDriverStatus = DriverPending

func (s DriverStatus) String() string {
	return string(s)
}

type DriverModify struct {
	ID          *uuid.UUID
	Name        *string
	Phone       *string
	Status      *DriverStatus
	VehicleType *VehicleType
}
