package distance

import (
	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/util"
)

// Discrete Fréchet distance between trajectories, memoised top-down the
// same way on every entry point:
//
//	F[i][j] = max(G[i][j], min(F[i-1][j-1], F[i-1][j], F[i][j-1]))
//
// with G the pairwise haversine matrix. Both trajectories must be
// non-empty; behaviour on empty input is undefined.

// dfdCell fills the shared matrix ca lazily. Unset cells hold -1, which
// no real distance can take.
func dfdCell(ta, tb geo.Trajectory, ca [][]float64, i, j int) float64 {
	if ca[i][j] >= 0 {
		return ca[i][j]
	}
	switch {
	case i == 0 && j == 0:
		ca[i][j] = geo.HaversineDistance(ta[0], tb[0])
	case i > 0 && j == 0:
		ca[i][j] = util.MaxF64(dfdCell(ta, tb, ca, i-1, 0), geo.HaversineDistance(ta[i], tb[0]))
	case i == 0 && j > 0:
		ca[i][j] = util.MaxF64(dfdCell(ta, tb, ca, 0, j-1), geo.HaversineDistance(ta[0], tb[j]))
	default:
		ca[i][j] = util.MaxF64(
			util.MinF64(dfdCell(ta, tb, ca, i-1, j-1),
				util.MinF64(dfdCell(ta, tb, ca, i-1, j), dfdCell(ta, tb, ca, i, j-1))),
			geo.HaversineDistance(ta[i], tb[j]))
	}
	return ca[i][j]
}

// DFD returns the discrete Fréchet distance between two trajectories in
// meters.
func DFD(ta, tb geo.Trajectory) float64 {
	m := len(ta)
	k := len(tb)
	ca := make([][]float64, m)
	for i := range ca {
		row := make([]float64, k)
		for j := range row {
			row[j] = -1
		}
		ca[i] = row
	}
	return dfdCell(ta, tb, ca, m-1, k-1)
}

// Tri-state memo cells for Within. A byte matrix avoids the allocation
// and unboxing cost of nullable booleans.
const (
	cellUnknown int8 = 0
	cellTrue    int8 = 1
	cellFalse   int8 = -1
)

func withinCell(dist float64, ta, tb geo.Trajectory, ca [][]int8, i, j int) int8 {
	if ca[i][j] == cellUnknown {
		if geo.HaversineDistance(ta[i], tb[j]) <= dist {
			switch {
			case i == 0 && j == 0:
				ca[i][j] = cellTrue
			case i > 0 && j == 0:
				ca[i][j] = withinCell(dist, ta, tb, ca, i-1, 0)
			case i == 0 && j > 0:
				ca[i][j] = withinCell(dist, ta, tb, ca, 0, j-1)
			default:
				// The || chain is evaluated left to right, so the up and
				// left predecessors are only explored when the diagonal
				// is unreachable.
				if withinCell(dist, ta, tb, ca, i-1, j-1) == cellTrue ||
					withinCell(dist, ta, tb, ca, i-1, j) == cellTrue ||
					withinCell(dist, ta, tb, ca, i, j-1) == cellTrue {
					ca[i][j] = cellTrue
				} else {
					ca[i][j] = cellFalse
				}
			}
		} else {
			ca[i][j] = cellFalse
		}
	}
	return ca[i][j]
}

// Within reports whether the discrete Fréchet distance between two
// trajectories is at most dist meters, short-circuiting the DP as soon
// as a cell exceeds the bound.
func Within(dist float64, ta, tb geo.Trajectory) bool {
	m := len(ta)
	k := len(tb)
	ca := make([][]int8, m)
	for i := range ca {
		ca[i] = make([]int8, k)
	}
	return withinCell(dist, ta, tb, ca, m-1, k-1) == cellTrue
}
