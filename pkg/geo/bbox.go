package geo

import "math"

// BBox is an axis-aligned box with p1 as the lower-left corner and p2
// as the upper-right corner. Both bounds are inclusive.
type BBox struct {
	P1     Point
	P2     Point
	Width  float64
	Height float64
}

func NewBBox(p1, p2 Point) BBox {
	return BBox{
		P1:     p1,
		P2:     p2,
		Width:  p2.Lon - p1.Lon,
		Height: p2.Lat - p1.Lat,
	}
}

func (b BBox) Contains(p Point) bool {
	return b.P1.Lon <= p.Lon && b.P1.Lat <= p.Lat &&
		b.P2.Lon >= p.Lon && b.P2.Lat >= p.Lat
}

func (b BBox) Overlap(o BBox) bool {
	return b.P1.Lon <= o.P1.Lon+o.Width &&
		b.P1.Lon+b.Width >= o.P1.Lon &&
		b.P1.Lat <= o.P1.Lat+o.Height &&
		b.P1.Lat+b.Height >= o.P1.Lat
}

// PointsBBox returns the bounding box of a trajectory.
func PointsBBox(points Trajectory) BBox {
	minX := math.MaxFloat64
	minY := math.MaxFloat64
	maxX := -math.MaxFloat64
	maxY := -math.MaxFloat64
	for _, p := range points {
		if p.Lon < minX {
			minX = p.Lon
		}
		if p.Lat < minY {
			minY = p.Lat
		}
		if p.Lon > maxX {
			maxX = p.Lon
		}
		if p.Lat > maxY {
			maxY = p.Lat
		}
	}
	return NewBBox(NewPoint(minX, minY), NewPoint(maxX, maxY))
}

// PairBBox returns the bounding box spanned by two points.
func PairBBox(a, b Point) BBox {
	minX := math.Min(a.Lon, b.Lon)
	maxX := math.Max(a.Lon, b.Lon)
	minY := math.Min(a.Lat, b.Lat)
	maxY := math.Max(a.Lat, b.Lat)
	return NewBBox(NewPoint(minX, minY), NewPoint(maxX, maxY))
}
