package driver

import (
	"marketplace/internal/entities"
)

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}

	return &entities.Driver{
		ID:          d.ID,
		Name:        d.Name,
		Phone:       d.Phone,
		Status:      entities.DriverStatus(d.Status),
		VehicleType: entities.VehicleType(d.VehicleType),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func FromDomainModify(driverModify *entities.DriverModify) *DriverModifyDB {
	if driverModify == nil {
		return nil
	}
	driverDB := &DriverModifyDB{
		ID:    driverModify.ID,
		Name:  driverModify.Name,
		Phone: driverModify.Phone,
	}

	if driverModify.Status != nil {
		status := driverModify.Status.String()
		driverDB.Status = &status
	}
	if driverModify.VehicleType != nil {
		vehicleType := driverModify.VehicleType.String()
		driverDB.VehicleType = &vehicleType
	}

	return driverDB
}

func ToDomainList(driversDB []DriverDB) []entities.Driver {
	if len(driversDB) == 0 {
		return []entities.Driver{}
	}

	result := make([]entities.Driver, len(driversDB))
	for i := range driversDB {
		result[i] = *ToDomain(&driversDB[i])
	}
	return result
}
