package usecases

import (
	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/motif"
)

type Engine interface {
	Query(q index.Query) index.Response
	Nearby(p geo.Point, radius float64) []*index.Record
	DFD(a, b geo.Trajectory) float64
	Within(eps float64, a, b geo.Trajectory) bool
	Motif(a, b geo.Trajectory, e int) *motif.MotifPair
}
