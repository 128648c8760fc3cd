package usecases

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/motif"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

type SimilarityService struct {
	log    *zap.Logger
	engine Engine
}

func NewSimilarityService(log *zap.Logger, engine Engine) *SimilarityService {
	return &SimilarityService{
		log:    log,
		engine: engine,
	}
}

// Similar retrieves the corpus records within the Jaccard threshold of
// the encoded query polyline, closest first.
func (ss *SimilarityService) Similar(polyline string, threshold float64) ([]index.Result, error) {
	points, err := geo.PointsFromPolyline(polyline)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "empty query trajectory")
	}

	record := index.NewRecord(uuid.NewString(), points)
	response := ss.engine.Query(index.NewQuery(0, record, threshold))
	ss.log.Info("similarity query",
		zap.String("query_id", record.ID),
		zap.Int("results", len(response.Results)))
	return response.Results, nil
}

// Nearby returns the ids of records passing within radius meters of the
// point.
func (ss *SimilarityService) Nearby(lat, lon, radius float64) []string {
	records := ss.engine.Nearby(geo.NewPoint(lon, lat), radius)
	ids := make([]string, len(records))
	for i, record := range records {
		ids[i] = record.ID
	}
	return ids
}

// DFD computes the discrete Fréchet distance between two encoded
// polylines.
func (ss *SimilarityService) DFD(a, b string) (float64, error) {
	ta, tb, err := decodePair(a, b)
	if err != nil {
		return 0, err
	}
	return ss.engine.DFD(ta, tb), nil
}

// Within reports whether two encoded polylines are within eps meters
// under the discrete Fréchet distance.
func (ss *SimilarityService) Within(eps float64, a, b string) (bool, error) {
	ta, tb, err := decodePair(a, b)
	if err != nil {
		return false, err
	}
	return ss.engine.Within(eps, ta, tb), nil
}

// Motif finds the closest subtrajectory pair of two encoded polylines
// with both sides at least minLength points long. A nil pair means no
// admissible subrange exists.
func (ss *SimilarityService) Motif(a, b string, minLength int) (*motif.MotifPair, error) {
	ta, tb, err := decodePair(a, b)
	if err != nil {
		return nil, err
	}
	if minLength < 1 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput, "min_length must be positive")
	}
	pair := ss.engine.Motif(ta, tb, minLength)
	if pair == nil {
		return nil, util.WrapErrorf(nil, util.ErrNotFound,
			"no subtrajectory pair of length >= %d", minLength)
	}
	return pair, nil
}

func decodePair(a, b string) (geo.Trajectory, geo.Trajectory, error) {
	ta, err := geo.PointsFromPolyline(a)
	if err != nil {
		return nil, nil, err
	}
	tb, err := geo.PointsFromPolyline(b)
	if err != nil {
		return nil, nil, err
	}
	if len(ta) == 0 || len(tb) == 0 {
		return nil, nil, util.WrapErrorf(nil, util.ErrBadParamInput, "empty trajectory")
	}
	return ta, tb, nil
}
