package spatialhash

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/roadquery/geo"
)

func TestSpatialKeyAlgoRoundTrip(t *testing.T) {
	algo := NewSpatialKeyAlgo(56)
	bound := algo.DecodingErrorRadiusMeters()

	pts := []geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 51.5074, Lon: -0.1278},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 89.9, Lon: 179.9},
		{Lat: -89.9, Lon: -179.9},
	}
	for _, p := range pts {
		key := algo.Encode(p.Lat, p.Lon)
		lat, lon := algo.Decode(key)
		d := geo.Haversine(p, geo.Point{Lat: lat, Lon: lon})
		assert.LessOrEqualf(t, d, bound, "point %v decoded %v,%v off by %f > bound %f", p, lat, lon, d, bound)
	}
}

func TestSpatialKeyAlgoBitsRange(t *testing.T) {
	assert.Panics(t, func() { NewSpatialKeyAlgo(1) })
	assert.Panics(t, func() { NewSpatialKeyAlgo(65) })
	assert.NotPanics(t, func() { NewSpatialKeyAlgo(2) })
	assert.NotPanics(t, func() { NewSpatialKeyAlgo(64) })
}

func TestSpatialKeyAlgoDense(t *testing.T) {
	algo := NewSpatialKeyAlgo(8)
	key := algo.Encode(89.9, 179.9)
	assert.LessOrEqual(t, key, uint64(1)<<8-1, "8-bit key must not set bits above position 7")
}
