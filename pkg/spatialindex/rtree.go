package spatialindex

import (
	"math"

	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
)

// Rtree indexes the bounding box of every corpus record. Radius lookups
// use it as a cheap prefilter: a query point can only be near records
// whose padded boxes intersect the degree extent of its search circle.
type Rtree struct {
	tr *rtree.RTreeG[*index.Record]
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[*index.Record]
	return &Rtree{
		tr: &tr,
	}
}

// Build inserts one leaf per record, padded by boundingBoxRadius meters
// on the diagonal so border points still match.
func (rt *Rtree) Build(records []*index.Record, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree record-bbox index...")
	for _, record := range records {
		bbox := geo.PointsBBox(record.Trajectory)
		lower := geo.GetDestinationPoint(bbox.P1, 225, boundingBoxRadius)
		upper := geo.GetDestinationPoint(bbox.P2, 45, boundingBoxRadius)

		minLon := math.Min(lower.Lon, upper.Lon)
		minLat := math.Min(lower.Lat, upper.Lat)
		maxLon := math.Max(lower.Lon, upper.Lon)
		maxLat := math.Max(lower.Lat, upper.Lat)

		rt.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat}, record)
	}
	log.Info("R-tree record-bbox index built.", zap.Int("records", len(records)))
}

// SearchWithinRadius returns the records whose padded bounding box
// intersects the radius (meters) around the query point. The query box
// is the full degree extent of the search circle; a box spanned by the
// two diagonal corners alone would under-cover matches near the
// cardinal bearings.
func (rt *Rtree) SearchWithinRadius(q geo.Point, radius float64) []*index.Record {
	bbox := RadiusBBox(q, radius)

	results := make([]*index.Record, 0, 10)
	rt.tr.Search([2]float64{bbox.P1.Lon, bbox.P1.Lat}, [2]float64{bbox.P2.Lon, bbox.P2.Lat},
		func(min, max [2]float64, data *index.Record) bool {
			results = append(results, data)
			return true
		})
	return results
}
