package distance

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintang-b-s/geodabs/pkg/geo"
)

func meridian(lats ...float64) geo.Trajectory {
	points := make(geo.Trajectory, len(lats))
	for i, lat := range lats {
		points[i] = geo.NewPoint(0, lat)
	}
	return points
}

func randomTrajectory(rnd *rand.Rand, size int) geo.Trajectory {
	points := make(geo.Trajectory, size)
	for i := range points {
		points[i] = geo.NewPoint(rnd.Float64()*2-1, rnd.Float64()*2-1)
	}
	return points
}

func TestDFDIdentical(t *testing.T) {
	a := meridian(0, 1)
	assert.Equal(t, 0.0, DFD(a, a))
}

func TestDFDParallelSegments(t *testing.T) {
	a := meridian(0, 1)
	b := meridian(2, 3)

	// every coupling must pair (0,0) with a point at least two degrees
	// away, and pairing index-wise realises exactly that
	want := geo.HaversineDistance(geo.NewPoint(0, 0), geo.NewPoint(0, 2))
	assert.InDelta(t, want, DFD(a, b), 1e-9)
}

func TestDFDSymmetric(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		a := randomTrajectory(rnd, 2+rnd.Intn(10))
		b := randomTrajectory(rnd, 2+rnd.Intn(10))
		assert.Equal(t, DFD(a, b), DFD(b, a))
	}
}

func TestDFDLowerBound(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for i := 0; i < 50; i++ {
		a := randomTrajectory(rnd, 2+rnd.Intn(10))
		b := randomTrajectory(rnd, 2+rnd.Intn(10))

		lb := 0.0
		for _, p := range a {
			best := 1e18
			for _, q := range b {
				if d := geo.HaversineDistance(p, q); d < best {
					best = d
				}
			}
			if best > lb {
				lb = best
			}
		}
		require.GreaterOrEqual(t, DFD(a, b), lb)
	}
}

func TestWithinMatchesDistance(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		a := randomTrajectory(rnd, 2+rnd.Intn(8))
		b := randomTrajectory(rnd, 2+rnd.Intn(8))
		d := DFD(a, b)

		assert.True(t, Within(d, a, b))
		assert.True(t, Within(d*1.01+1, a, b))
		assert.False(t, Within(d*0.99-1, a, b))
	}
}

func TestDTWBaseline(t *testing.T) {
	a := meridian(0, 1, 2)
	assert.Equal(t, 0.0, DTW(a, a))
	b := meridian(0, 1, 3)
	assert.Greater(t, DTW(a, b), 0.0)
}
