package motif

import (
	"math"

	"github.com/lintang-b-s/geodabs/pkg/distance"
	"github.com/lintang-b-s/geodabs/pkg/geo"
)

// BruteForce enumerates every admissible (start, end) pair of both
// trajectories and recomputes the discrete Fréchet distance from
// scratch for each. O(s²·t²) DFD evaluations; kept as the oracle the
// faster variants are tested against.
func BruteForce(ta, tb geo.Trajectory, e int) *MotifPair {
	s := len(ta)
	t := len(tb)

	bsf := math.MaxFloat64
	var bpair *MotifPair

	for i := 0; i <= s-e; i++ {
		for j := 0; j <= t-e; j++ {
			for ie := i + e; ie <= s; ie++ {
				for je := j + e; je <= t; je++ {
					d := distance.DFD(ta[i:ie], tb[j:je])
					if d < bsf {
						bsf = d
						bpair = newMotifPair(i, j, ie, je, bsf)
					}
				}
			}
		}
	}

	return bpair
}
