package index

import (
	"encoding/binary"
	"math"

	"github.com/RoaringBitmap/roaring"
	"github.com/twmb/murmur3"

	"github.com/lintang-b-s/geodabs/pkg/geo"
	"github.com/lintang-b-s/geodabs/pkg/geo/geohash"
)

// GeodabIndex refines the plain geohash index with two ideas borrowed
// from document fingerprinting: k-gram hashing of normalized point runs
// and winnowing of the resulting fingerprint stream. Any two
// trajectories sharing t consecutive normalized points are guaranteed
// to share at least one selected fingerprint.
//
// A fingerprint packs locality and content into 32 bits:
//
//	(low 16 bits of geohash(meanLat, meanLng, 16)) << 16  |  murmur3 & 0xffff
//
// so hash-equal windows of unrelated geography rarely collide.
type GeodabIndex struct {
	bits int // normalization cell precision
	t    int // winnow guarantee threshold, t >= k
	k    int // points per k-gram

	postings map[uint32]map[string]*Record
	dataset  map[string]*roaring.Bitmap
}

func NewGeodabIndex(bits, t, k int) *GeodabIndex {
	return &GeodabIndex{
		bits:     bits,
		t:        t,
		k:        k,
		postings: make(map[uint32]map[string]*Record),
		dataset:  make(map[string]*roaring.Bitmap),
	}
}

func (idx *GeodabIndex) Add(records []*Record) {
	for _, record := range records {
		points := Normalize(record.Trajectory, idx.bits)
		fingerprints := idx.extract(points)
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

func (idx *GeodabIndex) Query(q Query) Response {
	queryPoints := Normalize(q.Record.Trajectory, idx.bits)
	queryFingerprints := idx.extract(queryPoints)
	return retrieve(q, queryFingerprints, idx.postings, idx.dataset)
}

type fingerprint struct {
	hash     int32
	position int
}

// extract slides a k-gram window over the normalized points, hashes
// each window, then winnows: from every run of w = t-k+1 consecutive
// fingerprints the smallest hash is selected, leftmost winning ties.
// The bitmap collapses duplicate selections, so the expected density is
// bounded by 2/(w+1) of the input length.
func (idx *GeodabIndex) extract(points geo.Trajectory) *roaring.Bitmap {
	rr := roaring.New()

	fingerprints := make([]fingerprint, 0, len(points))
	buf := make([]byte, 16*idx.k)
	for i := 0; i+idx.k <= len(points); i++ {
		lat := 0.0
		lon := 0.0
		for j := 0; j < idx.k; j++ {
			p := points[i+j]
			binary.LittleEndian.PutUint64(buf[16*j:], math.Float64bits(p.Lon))
			binary.LittleEndian.PutUint64(buf[16*j+8:], math.Float64bits(p.Lat))
			lat += p.Lat
			lon += p.Lon
		}
		right := int32(murmur3.Sum32(buf))
		lat /= float64(idx.k)
		lon /= float64(idx.k)
		left := int32(geohash.Encode(lat, lon, 16) & 0xffff)
		fingerprints = append(fingerprints, fingerprint{
			hash:     left<<16 | right&0xffff,
			position: i,
		})
	}

	for _, h := range winnow(fingerprints, idx.t-idx.k+1) {
		rr.Add(uint32(h))
	}

	return rr
}

// winnow selects, from every run of w consecutive fingerprints, the one
// with the smallest hash; the leftmost minimum wins ties.
func winnow(fingerprints []fingerprint, w int) []int32 {
	selected := make([]int32, 0, len(fingerprints))
	for i := 0; i+w <= len(fingerprints); i++ {
		m := i
		for j := i + 1; j < i+w; j++ {
			if fingerprints[j].hash < fingerprints[m].hash {
				m = j
			}
		}
		selected = append(selected, fingerprints[m].hash)
	}
	return selected
}
