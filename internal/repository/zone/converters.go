package zone

import (
	"marketplace/internal/entities"
	"marketplace/pkg/geo"
)

func ToDomain(z *ZoneDB) *entities.Zone {
	if z == nil {
		return nil
	}

	polygon := make([]geo.Point, len(z.Polygon))
	for i, p := range z.Polygon {
		polygon[i] = geo.Point{Latitude: p.Latitude, Longitude: p.Longitude}
	}

	neighborhoods := z.Neighborhoods
	if neighborhoods == nil {
		neighborhoods = []string{}
	}

	return &entities.Zone{
		ID:            z.ID,
		Name:          z.Name,
		Polygon:       polygon,
		Status:        entities.ZoneStatus(z.Status),
		Priority:      z.Priority,
		DeliveryFee:   z.DeliveryFee,
		Neighborhoods: neighborhoods,
		CreatedAt:     z.CreatedAt,
		UpdatedAt:     z.UpdatedAt,
	}
}

func FromDomainModify(zoneModify *entities.ZoneModify) *ZoneModifyDB {
	if zoneModify == nil {
		return nil
	}
	zoneDB := &ZoneModifyDB{
		ID:            zoneModify.ID,
		Name:          zoneModify.Name,
		Priority:      zoneModify.Priority,
		DeliveryFee:   zoneModify.DeliveryFee,
		Neighborhoods: zoneModify.Neighborhoods,
	}

	if zoneModify.Polygon != nil {
		zoneDB.Polygon = fromPoints(zoneModify.Polygon)
	}
	if zoneModify.Status != nil {
		status := zoneModify.Status.String()
		zoneDB.Status = &status
	}

	return zoneDB
}

func fromPoints(points []geo.Point) []PointDB {
	res := make([]PointDB, len(points))
	for i, p := range points {
		res[i] = PointDB{Latitude: p.Latitude, Longitude: p.Longitude}
	}
	return res
}

func ToDomainList(zonesDB []ZoneDB) []entities.Zone {
	if len(zonesDB) == 0 {
		return []entities.Zone{}
	}

	result := make([]entities.Zone, len(zonesDB))
	for i := range zonesDB {
		result[i] = *ToDomain(&zonesDB[i])
	}
	return result
}
