package distance

import "github.com/RoaringBitmap/roaring"

// Jaccard returns the Jaccard distance 1 - |A∩B|/|A∪B| between two
// fingerprint sets. Both cardinalities come straight from the roaring
// containers, no materialized intersection.
func Jaccard(a, b *roaring.Bitmap) float64 {
	intersection := float64(a.AndCardinality(b))
	union := float64(a.OrCardinality(b))
	return 1 - intersection/union
}
