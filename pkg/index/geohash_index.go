package index

import (
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/lintang-b-s/geodabs/pkg"
	"github.com/lintang-b-s/geodabs/pkg/distance"
	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/geo/geohash"
)

// GeohashIndex is the trivial fingerprint index: the fingerprint set of
// a record is the set of geohash cells its points fall into. Cheap to
// build, coarse to retrieve with, and the reference point for the
// geodab index.
type GeohashIndex struct {
	bits int

	postings map[uint32]map[string]*Record
	dataset  map[string]*roaring.Bitmap
}

func NewGeohashIndex(bits int) *GeohashIndex {
	return &GeohashIndex{
		bits:     bits,
		postings: make(map[uint32]map[string]*Record),
		dataset:  make(map[string]*roaring.Bitmap),
	}
}

func (idx *GeohashIndex) Add(records []*Record) {
	for _, record := range records {
		fingerprints := idx.extract(record.Trajectory)
		it := fingerprints.Iterator()
		for it.HasNext() {
			f := it.Next()
			if idx.postings[f] == nil {
				idx.postings[f] = make(map[string]*Record)
			}
			idx.postings[f][record.ID] = record
		}
		idx.dataset[record.ID] = fingerprints
	}
}

func (idx *GeohashIndex) Query(q Query) Response {
	queryFingerprints := idx.extract(q.Record.Trajectory)
	return retrieve(q, queryFingerprints, idx.postings, idx.dataset)
}

// extract masks the tagged geohash payload to the low 28 bits. The mask
// keeps fingerprint keys inside the dense region of the bitmap space;
// stored indices depend on the exact value.
func (idx *GeohashIndex) extract(points geo.Trajectory) *roaring.Bitmap {
	rr := roaring.New()
	for _, p := range points {
		rr.Add(uint32(geohash.Encode(p.Lat, p.Lon, idx.bits)) & pkg.GEOHASH_FINGERPRINT_MASK)
	}
	return rr
}

// retrieve unions the postings of every query fingerprint into a
// deduplicated candidate set, Jaccard-scores each candidate once and
// keeps those within the query threshold, sorted ascending.
func retrieve(q Query, queryFingerprints *roaring.Bitmap,
	postings map[uint32]map[string]*Record, dataset map[string]*roaring.Bitmap) Response {

	seen := make(map[string]struct{})
	results := make([]Result, 0)
	it := queryFingerprints.Iterator()
	for it.HasNext() {
		f := it.Next()
		for id, record := range postings[f] {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			d := distance.Jaccard(queryFingerprints, dataset[id])
			if d <= q.Distance {
				results = append(results, Result{Record: record, Distance: d})
			}
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Distance != results[j].Distance {
			return results[i].Distance < results[j].Distance
		}
		return results[i].Record.ID < results[j].Record.ID
	})
	return Response{Query: q, Results: results}
}
