package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	p := Point{Lat: 51.5, Lon: -0.12}
	assert.InDelta(t, 0, Haversine(p, p), 1e-9)
}

func TestHaversineKnownDistance(t *testing.T) {
	// One degree of latitude is close to 111.32km near the equator.
	a := Point{Lat: 0, Lon: 0}
	b := Point{Lat: 1, Lon: 0}
	assert.InDelta(t, 111320.0, Haversine(a, b), 200.0)
}

func TestPointListLengthSumsSegments(t *testing.T) {
	pl := PointList{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.5},
		{Lat: 0, Lon: 1},
	}
	total := pl.Length()
	a := Haversine(pl[0], pl[1])
	b := Haversine(pl[1], pl[2])
	assert.InDelta(t, a+b, total, 1e-6)
}

func TestPointListReverseAndClone(t *testing.T) {
	pl := PointList{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}, {Lat: 2, Lon: 2}}
	rev := pl.Reverse()
	require.Len(t, rev, 3)
	assert.Equal(t, pl[0], rev[2])
	assert.Equal(t, pl[2], rev[0])

	clone := pl.Clone()
	clone[0].Lat = 99
	assert.NotEqual(t, pl[0].Lat, clone[0].Lat)
}

func TestPointListSplitAtIndexConservesLength(t *testing.T) {
	pl := PointList{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 0, Lon: 2}}
	p := Point{Lat: 0, Lon: 0.5}
	prefix, suffix, prefixLen, suffixLen := pl.SplitAtIndex(0, p)

	require.Equal(t, PointList{{Lat: 0, Lon: 0}, p}, prefix)
	require.Equal(t, PointList{p, {Lat: 0, Lon: 1}, {Lat: 0, Lon: 2}}, suffix)
	assert.InDelta(t, pl.Length(), prefixLen+suffixLen, 1e-6)
}
