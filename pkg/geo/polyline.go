package geo

import (
	gopolyline "github.com/twpayne/go-polyline"

	"github.com/lintang-b-s/geodabs/pkg/util"
)

// PolylineFromPoints encodes a trajectory into a google maps encoded
// polyline string (lat first, per the polyline algorithm).
func PolylineFromPoints(points Trajectory) string {
	coords := make([][]float64, len(points))
	for i, p := range points {
		coords[i] = []float64{p.Lat, p.Lon}
	}
	return string(gopolyline.EncodeCoords(coords))
}

// PointsFromPolyline decodes an encoded polyline string into a trajectory.
func PointsFromPolyline(polyline string) (Trajectory, error) {
	coords, _, err := gopolyline.DecodeCoords([]byte(polyline))
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "invalid polyline %q", polyline)
	}
	points := make(Trajectory, len(coords))
	for i, c := range coords {
		points[i] = NewPoint(c[1], c[0])
	}
	return points, nil
}
