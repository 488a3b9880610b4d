package geo

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters - средний радиус Земли, используемый в формуле гаверсинусов
const EarthRadiusMeters = 6371000.0

// Coordinate - точка в градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LatLng переводит координату в представление s2
func (c Coordinate) LatLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}

// DistanceMeters возвращает расстояние по большому кругу между двумя точками в метрах.
// s2.LatLng.Distance считает угол по формуле гаверсинусов.
func DistanceMeters(a, b Coordinate) float64 {
	return a.LatLng().Distance(b.LatLng()).Radians() * EarthRadiusMeters
}
