package motif

import (
	"math"

	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

// BruteForceDP shares the pairwise distance matrix across every start
// pair and grows the Fréchet DP incrementally across end pairs within a
// fixed start, avoiding the repeated work of BruteForce.
func BruteForceDP(ta, tb geo.Trajectory, e int) *MotifPair {
	s := len(ta)
	t := len(tb)

	dG := pairwiseDistances(ta, tb)

	dF := make([][]float64, s)
	for i := range dF {
		dF[i] = make([]float64, t)
	}

	bsf := math.MaxFloat64
	var bpair *MotifPair

	for i := 0; i < s-e+1; i++ {
		for j := 0; j < t-e+1; j++ {

			dF[i][j] = dG[i][j]
			for k := j + 1; k < t; k++ {
				dF[i][k] = util.MaxF64(dG[i][k], dF[i][k-1])
			}
			for k := i + 1; k < s; k++ {
				dF[k][j] = util.MaxF64(dG[k][j], dF[k-1][j])
			}

			for ie := i + 1; ie < s; ie++ {
				for je := j + 1; je < t; je++ {
					tmp := util.MinF64(dF[ie-1][je-1], util.MinF64(dF[ie][je-1], dF[ie-1][je]))
					dF[ie][je] = util.MaxF64(dG[ie][je], tmp)
					if ie >= i+e-1 && je >= j+e-1 && dF[ie][je] < bsf {
						bsf = dF[ie][je]
						bpair = newMotifPair(i, j, ie+1, je+1, bsf)
					}
				}
			}
		}
	}

	return bpair
}
