package motif

import (
	"math"
	"sort"

	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

// candidate is a start pair with the lower bound of every motif that
// can begin there.
type candidate struct {
	i  int
	j  int
	lb float64
}

// Bounding is the branch-and-bound motif search. Per-row and per-column
// minima of the pairwise distance matrix yield a lower bound for every
// start pair; candidates are visited in ascending bound order and the
// search stops as soon as the best distance found so far is at most the
// bound of the next candidate.
func Bounding(ta, tb geo.Trajectory, e int) *MotifPair {
	s := len(ta)
	t := len(tb)
	if s < e || t < e {
		return nil
	}

	dG := pairwiseDistances(ta, tb)

	dF := make([][]float64, s)
	for i := range dF {
		dF[i] = make([]float64, t)
	}

	// cMin[i] is the minimum of the row below i, rMin[j] the minimum of
	// the column right of j. Any subrange that extends past row i must
	// couple some point of a[i+1:] and so costs at least cMin[i].
	cMin := make([]float64, s)
	for i := range cMin {
		cMin[i] = math.MaxFloat64
	}
	for i := 0; i < s-1; i++ {
		for j := 0; j < t; j++ {
			if d := dG[i+1][j]; d < cMin[i] {
				cMin[i] = d
			}
		}
	}

	rMin := make([]float64, t)
	for j := range rMin {
		rMin[j] = math.MaxFloat64
	}
	for i := 0; i < s; i++ {
		for j := 0; j < t-1; j++ {
			if d := dG[i][j+1]; d < rMin[j] {
				rMin[j] = d
			}
		}
	}

	bsf := math.MaxFloat64
	var (
		found            bool
		bi, bj, bie, bje int
	)

	// Candidate starts in (i, j) lexicographic order; the stable sort
	// below keeps that order on equal bounds, which the pruning depends
	// on for platform-independent results.
	candidates := make([]candidate, 0, (s-e+1)*(t-e+1))
	for i := 0; i < s-e+1; i++ {
		for j := 0; j < t-e+1; j++ {
			lbCell := dG[i][j]

			rlbStartCross := util.MaxF64(cMin[i], rMin[j])

			rlbRowBand := -math.MaxFloat64
			for jj := j; jj < j+e-1; jj++ {
				if rMin[jj] > rlbRowBand {
					rlbRowBand = rMin[jj]
				}
			}

			rlbColBand := -math.MaxFloat64
			for ii := i; ii < i+e-1; ii++ {
				if cMin[ii] > rlbColBand {
					rlbColBand = cMin[ii]
				}
			}

			lb := util.MaxF64(lbCell, util.MaxF64(rlbStartCross, util.MaxF64(rlbRowBand, rlbColBand)))
			candidates = append(candidates, candidate{i: i, j: j, lb: lb})
		}
	}
	sort.SliceStable(candidates, func(x, y int) bool {
		return candidates[x].lb < candidates[y].lb
	})

	for _, a := range candidates {
		if bsf <= a.lb {
			break
		}

		iEnd := s
		jEnd := t
		improved := false

		// Border rows of the DP for this start.
		dF[a.i][a.j] = dG[a.i][a.j]
		for k := a.j + 1; k < t; k++ {
			dF[a.i][k] = util.MaxF64(dG[a.i][k], dF[a.i][k-1])
		}
		for k := a.i + 1; k < s; k++ {
			dF[k][a.j] = util.MaxF64(dG[k][a.j], dF[k-1][a.j])
		}

		for ie := a.i + 1; ie < iEnd; ie++ {
			for je := a.j + 1; je < jEnd; je++ {
				dF[ie][je] = util.MaxF64(dG[ie][je],
					util.MinF64(dF[ie-1][je-1], util.MinF64(dF[ie][je-1], dF[ie-1][je])))
				if ie >= a.i+e-1 && je >= a.j+e-1 && dF[ie][je] < bsf {
					bsf = dF[ie][je]
					found = true
					improved = true
					bi, bj, bie, bje = a.i, a.j, ie, je
				}
			}
			// Once every subrange starting here that extends past the
			// best end row (column) must couple a point costing at least
			// bsf, growing that end cannot improve the answer. Each axis
			// is tightened on its own bound, and only from a best pair
			// found for this start.
			if improved && bsf <= cMin[bie] {
				iEnd = bie + 1
			}
			if improved && bsf <= rMin[bje] {
				jEnd = bje + 1
			}
		}
	}

	if !found {
		return nil
	}
	return newMotifPair(bi, bj, bie+1, bje+1, bsf)
}
