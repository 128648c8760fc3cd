package distance

import (
	"math"

	"github.com/lintang-b-s/geodabs/pkg/geo"
)

// DTW is a dynamic-time-warping baseline kept for benchmarking the
// retrieval quality of the fingerprint indices. It is not part of the
// similarity contract.
func DTW(x, y geo.Trajectory) float64 {
	dtw := make([][]float64, len(x))
	for i := range dtw {
		dtw[i] = make([]float64, len(y))
	}
	dtw[0][0] = 0
	for i := 1; i < len(x); i++ {
		dtw[i][0] = math.MaxFloat64
	}
	for j := 1; j < len(y); j++ {
		dtw[0][j] = math.MaxFloat64
	}
	for i := 1; i < len(x); i++ {
		for j := 1; j < len(y); j++ {
			cost := geo.HaversineDistance(x[i], y[j])
			dtw[i][j] = cost + math.Min(dtw[i-1][j], math.Min(dtw[i][j-1], dtw[i-1][j-1]))
		}
	}
	return dtw[len(x)-1][len(y)-1]
}
