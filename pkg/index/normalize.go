package index

import (
	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/geo/geohash"
)

// NormalizePoint snaps a point to the centre of its geohash cell at the
// given precision.
func NormalizePoint(p geo.Point, bits int) geo.Point {
	d := geohash.Decode(geohash.Encode(p.Lat, p.Lon, bits))
	return geo.NewPoint(d.Lng, d.Lat)
}

// Normalize snaps every point of a trajectory to its cell centre and
// run-length compresses the result: consecutive duplicates collapse to
// the first occurrence. Normalizing a normalized trajectory is a no-op.
func Normalize(points geo.Trajectory, bits int) geo.Trajectory {
	normalized := make(geo.Trajectory, 0, len(points))
	normalized = append(normalized, NormalizePoint(points[0], bits))
	for i := 1; i < len(points); i++ {
		next := NormalizePoint(points[i], bits)
		if !normalized[len(normalized)-1].Equal(next) {
			normalized = append(normalized, next)
		}
	}
	return normalized
}
