package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	testCases := []struct {
		name  string
		p1    Point
		p2    Point
		want  float64
		delta float64
	}{
		{
			name:  "identical points",
			p1:    NewPoint(0, 0),
			p2:    NewPoint(0, 0),
			want:  0,
			delta: 1e-9,
		},
		{
			name:  "quarter of the equator",
			p1:    NewPoint(0, 0),
			p2:    NewPoint(90, 0),
			want:  10007543,
			delta: 1,
		},
		{
			name:  "equator to pole",
			p1:    NewPoint(0, 0),
			p2:    NewPoint(0, 90),
			want:  10007543,
			delta: 1,
		},
		{
			name:  "one degree of latitude",
			p1:    NewPoint(0, 0),
			p2:    NewPoint(0, 1),
			want:  111194.9,
			delta: 1,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HaversineDistance(tt.p1, tt.p2), tt.delta)
			assert.InDelta(t, tt.want, HaversineDistance(tt.p2, tt.p1), tt.delta)
		})
	}
}

func TestDestinationPointRoundTrip(t *testing.T) {
	start := NewPoint(-117.0, 38.0)
	dest := GetDestinationPoint(start, 45, 5000)
	assert.InDelta(t, 5000, HaversineDistance(start, dest), 1)
}
