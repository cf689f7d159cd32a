package geo

import (
	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/interstatex/pkg"
)

// CalculateGreatCircleDistanceS2. great-circle distance in miles computed by s2 on the unit sphere,
// independent of the haversine implementation above
func CalculateGreatCircleDistanceS2(pointA, pointB Coordinate) float64 {
	a := s2.LatLngFromDegrees(pointA.Lat, pointA.Lon)
	b := s2.LatLngFromDegrees(pointB.Lat, pointB.Lon)
	return a.Distance(b).Radians() * pkg.EARTH_RADIUS_MILES
}

// ValidCoordinate reports whether c is a valid lat/lon pair.
func ValidCoordinate(c Coordinate) bool {
	return s2.LatLngFromDegrees(c.Lat, c.Lon).IsValid()
}
