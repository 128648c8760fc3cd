package motif

import (
	"github.com/lintang-b-s/geodabs/pkg/geo"
)

// MotifPair is the answer to a subtrajectory motif search: closed-open
// subranges [I, Ie) of trajectory a and [J, Je) of trajectory b, both
// of length at least the requested minimum, and the discrete Fréchet
// distance D between them.
type MotifPair struct {
	I  int
	J  int
	Ie int
	Je int
	D  float64
}

func newMotifPair(i, j, ie, je int, d float64) *MotifPair {
	return &MotifPair{
		I:  i,
		J:  j,
		Ie: ie,
		Je: je,
		D:  d,
	}
}

// pairwiseDistances fills G[i][j] = haversine(a[i], b[j]).
func pairwiseDistances(ta, tb geo.Trajectory) [][]float64 {
	dG := make([][]float64, len(ta))
	for i := range dG {
		dG[i] = make([]float64, len(tb))
		for j := range dG[i] {
			dG[i][j] = geo.HaversineDistance(ta[i], tb[j])
		}
	}
	return dG
}
