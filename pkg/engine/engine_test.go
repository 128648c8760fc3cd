package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/index"
)

func lineTrajectory(n int, startLon, startLat, step float64) geo.Trajectory {
	points := make(geo.Trajectory, n)
	for i := range points {
		points[i] = geo.NewPoint(startLon+float64(i)*step, startLat+float64(i)*step)
	}
	return points
}

func buildEngine(t *testing.T) (*SimilarityEngine, []*index.Record) {
	t.Helper()
	records := []*index.Record{
		index.NewRecord("records/a.txt", lineTrajectory(15, -117.0, 38.0, 0.01)),
		index.NewRecord("records/b.txt", lineTrajectory(15, -110.0, 30.0, 0.01)),
	}
	se := NewSimilarityEngine(zap.NewNop(), 40, 4, 2)
	se.Build(records, 50.0)
	return se, records
}

func TestEngineQueryRoundTrip(t *testing.T) {
	se, records := buildEngine(t)

	response := se.Query(index.NewQuery(0, records[0], 0.0))
	require.Len(t, response.Results, 1)
	assert.Equal(t, "records/a.txt", response.Results[0].Record.ID)
	assert.Equal(t, 0.0, response.Results[0].Distance)
}

func TestEngineRecordLookup(t *testing.T) {
	se, records := buildEngine(t)

	got, err := se.Record("records/b.txt")
	require.NoError(t, err)
	assert.Equal(t, records[1], got)

	_, err = se.Record("records/missing.txt")
	assert.Error(t, err)
}

func TestEngineNearby(t *testing.T) {
	se, _ := buildEngine(t)

	got := se.Nearby(geo.NewPoint(-117.0, 38.0), 1000)
	require.Len(t, got, 1)
	assert.Equal(t, "records/a.txt", got[0].ID)

	assert.Empty(t, se.Nearby(geo.NewPoint(0, 0), 1000))
}

func TestEngineNearbyCardinalBoundary(t *testing.T) {
	se, _ := buildEngine(t)

	// due south of record a's first point, ~900 m out of a 1000 m
	// radius: beyond radius/sqrt(2) on a cardinal bearing, so a query
	// box spanned by the diagonal corners alone would miss it
	probe := geo.GetDestinationPoint(geo.NewPoint(-117.0, 38.0), 180, 900)
	require.InDelta(t, 900, geo.HaversineDistance(probe, geo.NewPoint(-117.0, 38.0)), 1)

	got := se.Nearby(probe, 1000)
	require.Len(t, got, 1)
	assert.Equal(t, "records/a.txt", got[0].ID)

	assert.Empty(t, se.Nearby(probe, 500))
}

func TestEngineMotif(t *testing.T) {
	se, records := buildEngine(t)

	pair := se.Motif(records[0].Trajectory, records[0].Trajectory, 3)
	require.NotNil(t, pair)
	assert.Equal(t, 0.0, pair.D)

	assert.Nil(t, se.Motif(records[0].Trajectory[:2], records[1].Trajectory, 3))
}

func TestEngineDFD(t *testing.T) {
	se, records := buildEngine(t)

	assert.Equal(t, 0.0, se.DFD(records[0].Trajectory, records[0].Trajectory))
	d := se.DFD(records[0].Trajectory, records[1].Trajectory)
	assert.True(t, se.Within(d, records[0].Trajectory, records[1].Trajectory))
	assert.False(t, se.Within(d-1, records[0].Trajectory, records[1].Trajectory))
}
