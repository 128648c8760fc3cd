package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolylineRoundTrip(t *testing.T) {
	points := Trajectory{
		NewPoint(-120.2, 38.5),
		NewPoint(-120.95, 40.7),
		NewPoint(-126.453, 43.252),
	}
	decoded, err := PointsFromPolyline(PolylineFromPoints(points))
	require.NoError(t, err)
	require.Len(t, decoded, len(points))
	for i := range points {
		assert.InDelta(t, points[i].Lon, decoded[i].Lon, 1e-5)
		assert.InDelta(t, points[i].Lat, decoded[i].Lat, 1e-5)
	}
}

func TestPointsFromPolylineInvalid(t *testing.T) {
	_, err := PointsFromPolyline("\x80")
	assert.Error(t, err)
}
