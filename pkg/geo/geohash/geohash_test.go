package geohash

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWidenUnwidenRoundTrip(t *testing.T) {
	values := []int64{0, 1, 2, 0x7fffffff, 0xffffffff, 0x12345678, 0xdeadbeef}
	rnd := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		values = append(values, int64(rnd.Uint32()))
	}
	for _, v := range values {
		assert.Equal(t, v, Unwiden(Widen(v)))
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		lat := rnd.Float64()*180 - 90
		lng := rnd.Float64()*360 - 180
		bits := rnd.Intn(62)

		gh := Encode(lat, lng, bits)
		d := Decode(gh)

		require.True(t, d.MinLat() <= lat && lat < d.MaxLat(),
			"lat %v outside [%v, %v) at %d bits", lat, d.MinLat(), d.MaxLat(), bits)
		require.True(t, d.MinLng() <= lng && lng < d.MaxLng(),
			"lng %v outside [%v, %v) at %d bits", lng, d.MinLng(), d.MaxLng(), bits)
	}
}

func TestPrecisionRecovery(t *testing.T) {
	for bits := 0; bits <= 61; bits++ {
		gh := Encode(38.0, -117.0, bits)
		assert.True(t, IsTagged(gh))
		assert.Equal(t, bits, Precision(gh))
	}
}

func TestUntagIdempotent(t *testing.T) {
	gh := Encode(38.0, -117.0, 60)
	untagged := Untag(gh)
	assert.False(t, IsTagged(untagged))
	assert.Equal(t, untagged, Untag(untagged))
}

func TestPrecisionOfUntaggedPanics(t *testing.T) {
	assert.Panics(t, func() {
		Precision(Untag(Encode(38.0, -117.0, 60)))
	})
}

func TestBase32RoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	for i := 0; i < 500; i++ {
		lat := rnd.Float64()*180 - 90
		lng := rnd.Float64()*360 - 180
		bits := (rnd.Intn(12) + 1) * 5

		gh := Encode(lat, lng, bits)
		s := ToBase32Bits(gh, bits)
		require.Len(t, s, bits/5)
		require.Equal(t, Untag(gh)|PrecisionTag(bits), FromBase32(s))
	}
}

func TestEncodeBase32ContainsPoint(t *testing.T) {
	s := EncodeBase32(38.0, -117.0, 60)
	d := DecodeBase32(s)
	assert.True(t, d.MinLat() <= 38.0 && 38.0 < d.MaxLat())
	assert.True(t, d.MinLng() <= -117.0 && -117.0 < d.MaxLng())
}

func TestEastNeighbour(t *testing.T) {
	gh := Encode(38.0, -117.0, 60)
	d := Decode(gh)
	de := Decode(East(gh))

	assert.Greater(t, de.Lng, -117.0)
	assert.InDelta(t, d.Lat, de.Lat, 1e-9)
	assert.InDelta(t, d.Lng+2*d.LngError, de.Lng, 1e-9)
}

func TestNeighbourCycle(t *testing.T) {
	gh := Encode(38.0, -117.0, 60)
	assert.Equal(t, gh, West(East(gh)))
	assert.Equal(t, gh, South(North(gh)))
	assert.Equal(t, gh, Shift(Shift(gh, 3, -2), -3, 2))
}

func TestUnionPrecisionReduction(t *testing.T) {
	gh1 := Encode(38.0, -117.0, 60)
	gh2 := Encode(38.001, -117.001, 60)

	r := UnionPrecisionReduction(gh1, gh2)
	require.Greater(t, r, 0)
	assert.Equal(t,
		Encode(38.0, -117.0, 60-r),
		Encode(38.001, -117.001, 60-r))
	assert.NotEqual(t,
		Encode(38.0, -117.0, 60-r+1),
		Encode(38.001, -117.001, 60-r+1))

	assert.Equal(t, 0, UnionPrecisionReduction(gh1, gh1))
}

func TestDecodedCellCentre(t *testing.T) {
	gh := Encode(38.0, -117.0, 40)
	d := Decode(gh)

	// the centre plus or minus the error bars must recover the cell
	assert.InDelta(t, d.Lat, (d.MinLat()+d.MaxLat())/2, 1e-12)
	assert.InDelta(t, d.Lng, (d.MinLng()+d.MaxLng())/2, 1e-12)
}
