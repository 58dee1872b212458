package geo

import "math"

// Shape is satisfied by any region usable as a spatial-hash query
// predicate: it must know how to test a BBox for (possible) intersection
// and a single Point for strict containment.
//
// BBox intersection is used to prune quadtree branches during region
// queries (spatialhash.SpatialHashTable.GetNodesShape); Contains is the final
// per-point filter applied to candidates surviving that pruning.
type Shape interface {
	IntersectsBBox(BBox) bool
	Contains(Point) bool
	BBox() BBox
}

// BBox is an axis-aligned lat/lon bounding box, min-inclusive/max-inclusive.
type BBox struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// WorldBBox is the full WGS-84 extent, the root of the quadtree descent.
func WorldBBox() BBox {
	return BBox{MinLat: -90, MaxLat: 90, MinLon: -180, MaxLon: 180}
}

// IntersectsBBox reports whether b and other overlap (touching counts as
// overlapping).
func (b BBox) IntersectsBBox(other BBox) bool {
	return b.MinLat <= other.MaxLat && b.MaxLat >= other.MinLat &&
		b.MinLon <= other.MaxLon && b.MaxLon >= other.MinLon
}

// Contains reports whether p falls inside b (inclusive).
func (b BBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}

// BBox returns b itself, satisfying Shape.
func (b BBox) BBox() BBox { return b }

// quadrant splits b into its four children in the bit-pattern order the
// spatial-hash quadtree descent expects: {10, 11, 00, 01} appended to the
// running key prefix, i.e. {lowerLon/upperLat, upperLon/upperLat,
// lowerLon/lowerLat, upperLon/lowerLat}.
func (b BBox) quadrant(pattern int) BBox {
	midLat := (b.MinLat + b.MaxLat) / 2
	midLon := (b.MinLon + b.MaxLon) / 2
	switch pattern {
	case 0b10: // upper half (lat), lower half (lon)
		return BBox{MinLat: midLat, MaxLat: b.MaxLat, MinLon: b.MinLon, MaxLon: midLon}
	case 0b11: // upper half (lat), upper half (lon)
		return BBox{MinLat: midLat, MaxLat: b.MaxLat, MinLon: midLon, MaxLon: b.MaxLon}
	case 0b00: // lower half (lat), lower half (lon)
		return BBox{MinLat: b.MinLat, MaxLat: midLat, MinLon: b.MinLon, MaxLon: midLon}
	case 0b01: // lower half (lat), upper half (lon)
		return BBox{MinLat: b.MinLat, MaxLat: midLat, MinLon: midLon, MaxLon: b.MaxLon}
	default:
		panic("geo: invalid quadrant pattern")
	}
}

// Quadrant is exported for spatialhash's quadtree descent, which must
// recurse using exactly the same child ordering the key encoding uses.
func (b BBox) Quadrant(pattern int) BBox { return b.quadrant(pattern) }

// Circle is a center point plus a radius in meters.
type Circle struct {
	Center Point
	Radius float64
}

// IntersectsBBox reports whether any point of other could fall within c,
// using the bbox's nearest corner/edge distance to the circle's center.
func (c Circle) IntersectsBBox(other BBox) bool {
	nearestLat := clamp(c.Center.Lat, other.MinLat, other.MaxLat)
	nearestLon := clamp(c.Center.Lon, other.MinLon, other.MaxLon)
	return Haversine(c.Center, Point{Lat: nearestLat, Lon: nearestLon}) <= c.Radius
}

// Contains reports whether p lies within the circle.
func (c Circle) Contains(p Point) bool {
	return Haversine(c.Center, p) <= c.Radius
}

// BBox returns a conservative axis-aligned box covering the circle.
func (c Circle) BBox() BBox {
	// 1 degree of latitude is ~111.32km; longitude shrinks with cos(lat).
	dLat := c.Radius / 111320.0
	cosLat := math.Cos(c.Center.Lat * math.Pi / 180)
	if cosLat < 1e-6 {
		cosLat = 1e-6
	}
	dLon := c.Radius / (111320.0 * cosLat)
	return BBox{
		MinLat: clamp(c.Center.Lat-dLat, -90, 90),
		MaxLat: clamp(c.Center.Lat+dLat, -90, 90),
		MinLon: clamp(c.Center.Lon-dLon, -180, 180),
		MaxLon: clamp(c.Center.Lon+dLon, -180, 180),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
