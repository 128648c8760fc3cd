package controllers

import (
	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
	"github.com/lintang-b-s/geodabs/pkg/motif"
)

type similarRequest struct {
	Polyline  string  `json:"polyline" validate:"required"`
	Threshold float64 `json:"threshold" validate:"gte=0,lte=1"`
}

type similarResult struct {
	ID       string  `json:"id"`
	Distance float64 `json:"distance"`
	Polyline string  `json:"polyline"`
}

func NewSimilarResponse(results []index.Result) []similarResult {
	out := make([]similarResult, len(results))
	for i, r := range results {
		out[i] = similarResult{
			ID:       r.Record.ID,
			Distance: r.Distance,
			Polyline: geo.PolylineFromPoints(r.Record.Trajectory),
		}
	}
	return out
}

type nearbyRequest struct {
	Lat    float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon    float64 `json:"lon" validate:"gte=-180,lte=180"`
	Radius float64 `json:"radius" validate:"required,gt=0"`
}

type dfdRequest struct {
	A string `json:"a" validate:"required"`
	B string `json:"b" validate:"required"`
}

type dfdResponse struct {
	Distance float64 `json:"distance"`
	Within   *bool   `json:"within,omitempty"`
}

type motifRequest struct {
	A         string `json:"a" validate:"required"`
	B         string `json:"b" validate:"required"`
	MinLength int    `json:"min_length" validate:"required,min=1"`
}

type motifResponse struct {
	I        int     `json:"i"`
	J        int     `json:"j"`
	Ie       int     `json:"ie"`
	Je       int     `json:"je"`
	Distance float64 `json:"distance"`
}

func NewMotifResponse(pair *motif.MotifPair) motifResponse {
	return motifResponse{
		I:        pair.I,
		J:        pair.J,
		Ie:       pair.Ie,
		Je:       pair.Je,
		Distance: pair.D,
	}
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
