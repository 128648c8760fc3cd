package spatialindex

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/lintang-b-s/geodabs/pkg"
	"github.com/lintang-b-s/geodabs/pkg/geo"
)

// RadiusBBox returns the degree extent of a spherical cap of the given
// radius (meters) around p, suitable as the pruning box of a quadtree
// radius search. The s2 rect bound handles the latitude-dependent
// longitude stretch that a naive degree offset gets wrong.
func RadiusBBox(p geo.Point, radius float64) geo.BBox {
	center := s2.PointFromLatLng(s2.LatLngFromDegrees(p.Lat, p.Lon))
	c := s2.CapFromCenterAngle(center, s1.Angle(radius/pkg.EARTH_RADIUS_M))
	rect := c.RectBound()
	return geo.NewBBox(
		geo.NewPoint(rect.Lo().Lng.Degrees(), rect.Lo().Lat.Degrees()),
		geo.NewPoint(rect.Hi().Lng.Degrees(), rect.Hi().Lat.Degrees()))
}
