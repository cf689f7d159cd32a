package geo

import (
	"math"

	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

func sinSquaredHalf(angleRad float64) float64 {
	s := math.Sin(angleRad / 2)
	return s * s
}

// CalculateHaversineDistance. great-circle distance between two points (lat/lon in degrees), in statute miles
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	phiOne := util.DegreeToRadians(latOne)
	phiTwo := util.DegreeToRadians(latTwo)
	dPhi := util.DegreeToRadians(latTwo - latOne)
	dLambda := util.DegreeToRadians(longTwo - longOne)

	a := sinSquaredHalf(dPhi) + math.Cos(phiOne)*math.Cos(phiTwo)*sinSquaredHalf(dLambda)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return pkg.EARTH_RADIUS_MILES * c
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in miles
func GetDestinationPoint(lat1, lon1 float64, bearing float64, dist float64) (float64, float64) {

	dr := dist / pkg.EARTH_RADIUS_MILES

	bearing = util.DegreeToRadians(bearing)

	lat1 = util.DegreeToRadians(lat1)
	lon1 = util.DegreeToRadians(lon1)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return util.RadiansToDegree(lat2), normalizeLongitude(util.RadiansToDegree(lon2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}
