package geo

import (
	"math"

	"github.com/lintang-b-s/geodabs/pkg"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// HaversineDistance. great-circle distance between two points in meters.
func HaversineDistance(p1, p2 Point) float64 {
	latOne := util.DegreeToRadians(p1.Lat)
	longOne := util.DegreeToRadians(p1.Lon)
	latTwo := util.DegreeToRadians(p2.Lat)
	longTwo := util.DegreeToRadians(p2.Lon)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Min(1, math.Sqrt(a)))
	return pkg.EARTH_RADIUS_M * c
}

// GetDestinationPoint returns the destination point given the starting point, bearing and distance
// dist in meter
func GetDestinationPoint(p Point, bearing float64, dist float64) Point {

	dr := dist / pkg.EARTH_RADIUS_M

	bearing = util.DegreeToRadians(bearing)

	lat1 := util.DegreeToRadians(p.Lat)
	lon1 := util.DegreeToRadians(p.Lon)

	lat2Part1 := math.Sin(lat1) * math.Cos(dr)
	lat2Part2 := math.Cos(lat1) * math.Sin(dr) * math.Cos(bearing)

	lat2 := math.Asin(lat2Part1 + lat2Part2)

	lon2Part1 := math.Sin(bearing) * math.Sin(dr) * math.Cos(lat1)
	lon2Part2 := math.Cos(dr) - (math.Sin(lat1) * math.Sin(lat2))

	lon2 := lon1 + math.Atan2(lon2Part1, lon2Part2)

	return NewPoint(normalizeLongitude(util.RadiansToDegree(lon2)), util.RadiansToDegree(lat2))
}

// normalizeLongitude. long in degree
func normalizeLongitude(long float64) float64 {
	return math.Mod((long+540), 360) - 180.0
}
