package spatialindex

import (
	"math"

	"github.com/lintang-b-s/geodabs/pkg/geo"
)

type qtEntry[T comparable] struct {
	point  geo.Point
	object T
}

type qtNode[T comparable] struct {
	bbox           geo.BBox
	nw, ne, sw, se *qtNode[T]

	// pending bucket: capacity counts distinct points, so stacked
	// observations at one location take a single slot. A bucket that is
	// already full still splits on the next insert, even when that
	// point is already in it.
	points  map[geo.Point]struct{}
	entries []qtEntry[T]
}

func newQtNode[T comparable](bbox geo.BBox, capacity int) *qtNode[T] {
	return &qtNode[T]{
		bbox:    bbox,
		points:  make(map[geo.Point]struct{}, capacity),
		entries: make([]qtEntry[T], 0, capacity),
	}
}

// QuadTree is a point-carrying quadtree over a static, a-priori-known
// bounding box. Insertions are single-writer; once ingest is done the
// tree is immutable and search is safe from any number of readers.
type QuadTree[T comparable] struct {
	root     *qtNode[T]
	capacity int
}

func NewQuadTree[T comparable](bbox geo.BBox, capacity int) *QuadTree[T] {
	return &QuadTree[T]{
		root:     newQtNode[T](bbox, capacity),
		capacity: capacity,
	}
}

// Insert stores an object under a point. Points outside the tree's box
// are discarded.
func (qt *QuadTree[T]) Insert(p geo.Point, o T) {
	qt.insert(qt.root, qtEntry[T]{point: p, object: o})
}

func (qt *QuadTree[T]) insert(n *qtNode[T], e qtEntry[T]) {
	if !n.bbox.Contains(e.point) {
		return
	}
	if n.points != nil {
		qt.insertOrSplit(n, e)
	} else {
		qt.insert(n.nw, e)
		qt.insert(n.ne, e)
		qt.insert(n.sw, e)
		qt.insert(n.se, e)
	}
}

func (qt *QuadTree[T]) insertOrSplit(n *qtNode[T], e qtEntry[T]) {
	if len(n.points) < qt.capacity {
		n.points[e.point] = struct{}{}
		n.entries = append(n.entries, e)
		return
	}

	// The upper-half children start at nextAfter(mid) so the four
	// sub-boxes tile the parent exactly: Contains is inclusive on both
	// bounds, and no point may land in two children.
	x1 := n.bbox.P1.Lon
	x2 := n.bbox.P1.Lon + n.bbox.Width/2
	x4 := n.bbox.P2.Lon
	x3 := math.Nextafter(x2, x4)
	y1 := n.bbox.P1.Lat
	y2 := n.bbox.P1.Lat + n.bbox.Height/2
	y4 := n.bbox.P2.Lat
	y3 := math.Nextafter(y2, y4)
	n.nw = newQtNode[T](geo.NewBBox(geo.NewPoint(x1, y3), geo.NewPoint(x2, y4)), qt.capacity)
	n.ne = newQtNode[T](geo.NewBBox(geo.NewPoint(x3, y3), geo.NewPoint(x4, y4)), qt.capacity)
	n.sw = newQtNode[T](geo.NewBBox(geo.NewPoint(x1, y1), geo.NewPoint(x2, y2)), qt.capacity)
	n.se = newQtNode[T](geo.NewBBox(geo.NewPoint(x3, y1), geo.NewPoint(x4, y2)), qt.capacity)
	pending := n.entries
	n.points = nil
	n.entries = nil
	for _, p := range pending {
		qt.insert(n, p)
	}
	qt.insert(n, e)
}

// Search returns every stored object whose point lies in the query box.
func (qt *QuadTree[T]) Search(bbox geo.BBox) []T {
	results := make(map[T]struct{})
	qt.root.search(bbox, results)
	out := make([]T, 0, len(results))
	for o := range results {
		out = append(out, o)
	}
	return out
}

func (n *qtNode[T]) search(bbox geo.BBox, results map[T]struct{}) {
	if !bbox.Overlap(n.bbox) {
		return
	}
	if n.entries != nil {
		for _, e := range n.entries {
			if bbox.Contains(e.point) {
				results[e.object] = struct{}{}
			}
		}
	} else if n.nw != nil {
		n.nw.search(bbox, results)
		n.ne.search(bbox, results)
		n.sw.search(bbox, results)
		n.se.search(bbox, results)
	}
}

// SearchRadius returns every stored object within radius meters of the
// point. bbox is the pre-computed degree extent of the radius around
// the point (see RadiusBBox); only nodes overlapping it are visited.
func (qt *QuadTree[T]) SearchRadius(p geo.Point, radius float64, bbox geo.BBox) []T {
	results := make(map[T]struct{})
	qt.root.searchRadius(p, radius, bbox, results)
	out := make([]T, 0, len(results))
	for o := range results {
		out = append(out, o)
	}
	return out
}

func (n *qtNode[T]) searchRadius(p geo.Point, radius float64, bbox geo.BBox, results map[T]struct{}) {
	if !bbox.Overlap(n.bbox) {
		return
	}
	if n.entries != nil {
		for _, e := range n.entries {
			if bbox.Contains(e.point) && geo.HaversineDistance(p, e.point) <= radius {
				results[e.object] = struct{}{}
			}
		}
	} else if n.nw != nil {
		n.nw.searchRadius(p, radius, bbox, results)
		n.ne.searchRadius(p, radius, bbox, results)
		n.sw.searchRadius(p, radius, bbox, results)
		n.se.searchRadius(p, radius, bbox, results)
	}
}
