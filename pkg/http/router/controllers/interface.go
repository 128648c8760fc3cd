package controllers

import (
	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/motif"
)

type SimilarityService interface {
	Similar(polyline string, threshold float64) ([]index.Result, error)
	Nearby(lat, lon, radius float64) []string
	DFD(a, b string) (float64, error)
	Within(eps float64, a, b string) (bool, error)
	Motif(a, b string, minLength int) (*motif.MotifPair, error)
}
