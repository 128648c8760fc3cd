package dataset

import (
	"math"
	"math/rand"

	"github.com/lintang-b-s/geodabs/pkg/geo"
)

// RandomPoint returns a uniformly distributed point inside bounds.
func RandomPoint(bounds geo.BBox, rnd *rand.Rand) geo.Point {
	x := bounds.P1.Lon + rnd.Float64()*bounds.Width
	y := bounds.P1.Lat + rnd.Float64()*bounds.Height
	return geo.NewPoint(x, y)
}

// RandomBBox returns the bounding box of two random points in bounds.
func RandomBBox(bounds geo.BBox, rnd *rand.Rand) geo.BBox {
	return geo.PairBBox(RandomPoint(bounds, rnd), RandomPoint(bounds, rnd))
}

// RandomTrajectory generates a random walk of the given size inside
// bounds: each step moves dist degrees at a bearing (in radians) that
// drifts by up to ±5 radians per step, wrapping at the box edges.
func RandomTrajectory(bounds geo.BBox, angle, dist float64, size int, rnd *rand.Rand) geo.Trajectory {
	points := make(geo.Trajectory, size)
	points[0] = RandomPoint(bounds, rnd)
	for i := 1; i < size; i++ {
		prev := points[i-1]
		dx := math.Mod(prev.Lon-bounds.P1.Lon+math.Cos(angle)*dist, bounds.Width)
		if dx < 0 {
			dx += bounds.Width
		}
		dy := math.Mod(prev.Lat-bounds.P1.Lat+math.Sin(angle)*dist, bounds.Height)
		if dy < 0 {
			dy += bounds.Height
		}
		angle = angle + (rnd.Float64()*10 - 5)
		points[i] = geo.NewPoint(bounds.P1.Lon+dx, bounds.P1.Lat+dy)
	}
	return points
}
