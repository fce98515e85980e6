package driver

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidStatus(status entities.DriverStatus) bool {
	switch status {
	case entities.DriverPending, entities.DriverApproved, entities.DriverRejected, entities.DriverSuspended:
		return true
	default:
		return false
	}
}

func isValidVehicle(vehicle entities.VehicleType) bool {
	switch vehicle {
	case entities.OnFoot, entities.Scooter, entities.Car:
		return true
	default:
		return false
	}
}
