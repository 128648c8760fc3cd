package spatialindex

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintang-b-s/geodabs/pkg/geo"
)

func TestQuadTreeBBoxSearch(t *testing.T) {
	qt := NewQuadTree[string](geo.NewBBox(geo.NewPoint(0, 0), geo.NewPoint(100, 100)), 4)

	rnd := rand.New(rand.NewSource(21))
	inserted := make(map[string]geo.Point, 500)
	for i := 0; i < 500; i++ {
		p := geo.NewPoint(rnd.Float64()*100, rnd.Float64()*100)
		id := fmt.Sprintf("p%03d", i)
		inserted[id] = p
		qt.Insert(p, id)
	}

	query := geo.NewBBox(geo.NewPoint(20, 30), geo.NewPoint(60, 70))
	got := qt.Search(query)

	want := make(map[string]struct{})
	for id, p := range inserted {
		if query.Contains(p) {
			want[id] = struct{}{}
		}
	}
	require.Len(t, got, len(want))
	for _, id := range got {
		assert.Contains(t, want, id)
	}
}

func TestQuadTreeDiscardsOutsidePoints(t *testing.T) {
	qt := NewQuadTree[int](geo.NewBBox(geo.NewPoint(0, 0), geo.NewPoint(10, 10)), 2)
	qt.Insert(geo.NewPoint(50, 50), 1)
	assert.Empty(t, qt.Search(geo.NewBBox(geo.NewPoint(0, 0), geo.NewPoint(100, 100))))
}

func TestQuadTreeSplitKeepsEveryEntry(t *testing.T) {
	qt := NewQuadTree[int](geo.NewBBox(geo.NewPoint(0, 0), geo.NewPoint(1, 1)), 2)

	rnd := rand.New(rand.NewSource(5))
	n := 200
	for i := 0; i < n; i++ {
		qt.Insert(geo.NewPoint(rnd.Float64(), rnd.Float64()), i)
	}

	// after many forced splits the full-extent query must still see
	// every object exactly once
	got := qt.Search(geo.NewBBox(geo.NewPoint(0, 0), geo.NewPoint(1, 1)))
	assert.Len(t, got, n)
}

func TestQuadTreeDuplicatePointsShareBucketSlot(t *testing.T) {
	qt := NewQuadTree[int](geo.NewBBox(geo.NewPoint(0, 0), geo.NewPoint(1, 1)), 2)

	p := geo.NewPoint(0.5, 0.5)
	for i := 0; i < 10; i++ {
		qt.Insert(p, i)
	}

	// ten objects at one location count as a single point, so no split
	// happens and all ten are retrievable
	got := qt.Search(geo.NewBBox(geo.NewPoint(0.4, 0.4), geo.NewPoint(0.6, 0.6)))
	assert.Len(t, got, 10)
}

func TestQuadTreeRadiusSearch(t *testing.T) {
	qt := NewQuadTree[string](geo.NewBBox(geo.NewPoint(-118, 37), geo.NewPoint(-116, 39)), 4)

	centre := geo.NewPoint(-117.0, 38.0)
	near := geo.NewPoint(-117.001, 38.001)
	far := geo.NewPoint(-117.5, 38.5)
	qt.Insert(near, "near")
	qt.Insert(far, "far")

	radius := 500.0
	got := qt.SearchRadius(centre, radius, RadiusBBox(centre, radius))
	assert.Equal(t, []string{"near"}, got)

	radius = 100000.0
	got = qt.SearchRadius(centre, radius, RadiusBBox(centre, radius))
	assert.Len(t, got, 2)
}
