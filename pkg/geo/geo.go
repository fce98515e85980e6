// Package geo содержит расчеты на сфере и геозоны.
package geo

import "math"

const (
	EarthRadiusMeters = 6371008.8

	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

type Point struct {
	Latitude  float64
	Longitude float64
}

// Valid проверяет, что координаты конечны и лежат в допустимых диапазонах.
func (p Point) Valid() bool {
	if math.IsNaN(p.Latitude) || math.IsNaN(p.Longitude) ||
		math.IsInf(p.Latitude, 0) || math.IsInf(p.Longitude, 0) {
		return false
	}
	return p.Latitude >= MinLatitude && p.Latitude <= MaxLatitude &&
		p.Longitude >= MinLongitude && p.Longitude <= MaxLongitude
}

// HaversineMeters считает расстояние по большой окружности между двумя точками.
func HaversineMeters(a, b Point) float64 {
	const degToRad = math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * degToRad
	dLng := (b.Longitude - a.Longitude) * degToRad
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Latitude*degToRad)*math.Cos(b.Latitude*degToRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusMeters * c
}

// ContainsPoint проверяет попадание точки в многоугольник методом трассировки луча.
// Многоугольник задается вершинами без повтора первой в конце. Точки на границе
// могут попасть в любую сторону, для геозон доставки это допустимо.
func ContainsPoint(polygon []Point, p Point) bool {
	if len(polygon) < 3 {
		return false
	}

	inside := false
	j := len(polygon) - 1
	for i := range polygon {
		vi, vj := polygon[i], polygon[j]
		if (vi.Latitude > p.Latitude) != (vj.Latitude > p.Latitude) {
			crossLng := (vj.Longitude-vi.Longitude)*(p.Latitude-vi.Latitude)/(vj.Latitude-vi.Latitude) + vi.Longitude
			if p.Longitude < crossLng {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}
