package engine

import (
	"time"

	"go.uber.org/zap"

	"github.com/lintang-b-s/geodabs/pkg"
	"github.com/lintang-b-s/geodabs/pkg/distance"
	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/motif"
	"github.com/lintang-b-s/geodabs/pkg/spatialindex"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

// SimilarityEngine assembles the sealed retrieval structures: the
// geodab fingerprint index for similarity queries, a quadtree over
// every corpus point and an r-tree over record bounding boxes for
// radius lookups. Build must finish before the first query; afterwards
// everything is read-only and safe for concurrent readers.
type SimilarityEngine struct {
	log *zap.Logger

	idx      index.TrajectoryIndex
	quadtree *spatialindex.QuadTree[*index.Record]
	rtree    *spatialindex.Rtree
	records  map[string]*index.Record
}

func NewSimilarityEngine(log *zap.Logger, bits, t, k int) *SimilarityEngine {
	return &SimilarityEngine{
		log:     log,
		idx:     index.NewGeodabIndex(bits, t, k),
		records: make(map[string]*index.Record),
	}
}

// Build ingests the corpus. Fingerprint extraction and index inserts
// run on the calling goroutine; ingest is single-writer.
// boundingBoxRadius pads every r-tree leaf in meters.
func (se *SimilarityEngine) Build(records []*index.Record, boundingBoxRadius float64) {
	start := time.Now()

	se.idx.Add(records)

	bbox := datasetBBox(records)
	se.quadtree = spatialindex.NewQuadTree[*index.Record](bbox, pkg.DEFAULT_QUADTREE_CAPACITY)
	for _, record := range records {
		for _, p := range record.Trajectory {
			se.quadtree.Insert(p, record)
		}
		se.records[record.ID] = record
	}

	se.rtree = spatialindex.NewRtree()
	se.rtree.Build(records, boundingBoxRadius, se.log)

	se.log.Info("similarity engine built",
		zap.Int("records", len(records)),
		zap.Duration("took", time.Since(start)))
}

func (se *SimilarityEngine) Query(q index.Query) index.Response {
	return se.idx.Query(q)
}

// Record returns the ingested record with the given identifier.
func (se *SimilarityEngine) Record(id string) (*index.Record, error) {
	record, ok := se.records[id]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "record %s not ingested", id)
	}
	return record, nil
}

// Nearby returns the records with at least one point within radius
// meters of the query point. The r-tree candidate set bounds the
// answer (its query box circumscribes the search circle), so an empty
// candidate set ends the lookup; otherwise the quadtree confirms true
// point distances.
func (se *SimilarityEngine) Nearby(p geo.Point, radius float64) []*index.Record {
	candidates := se.rtree.SearchWithinRadius(p, radius)
	if len(candidates) == 0 {
		return nil
	}
	return se.quadtree.SearchRadius(p, radius, spatialindex.RadiusBBox(p, radius))
}

func (se *SimilarityEngine) DFD(a, b geo.Trajectory) float64 {
	return distance.DFD(a, b)
}

func (se *SimilarityEngine) Within(eps float64, a, b geo.Trajectory) bool {
	return distance.Within(eps, a, b)
}

// Motif runs the bounding branch-and-bound subtrajectory search.
func (se *SimilarityEngine) Motif(a, b geo.Trajectory, e int) *motif.MotifPair {
	return motif.Bounding(a, b, e)
}

func datasetBBox(records []*index.Record) geo.BBox {
	points := make(geo.Trajectory, 0)
	for _, record := range records {
		points = append(points, record.Trajectory...)
	}
	return geo.PointsBBox(points)
}
