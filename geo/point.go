package geo

import "math"

// EarthRadiusMeters is the mean radius of the Earth used by Haversine.
const EarthRadiusMeters = 6371000.0

// Point is a WGS-84 coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// IsValid reports whether p falls within the legal WGS-84 ranges.
func (p Point) IsValid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Haversine returns the great-circle distance in meters between a and b.
func Haversine(a, b Point) float64 {
	const deg2rad = math.Pi / 180
	lat1 := a.Lat * deg2rad
	lat2 := b.Lat * deg2rad
	dLat := (b.Lat - a.Lat) * deg2rad
	dLon := (b.Lon - a.Lon) * deg2rad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// PointList is an ordered polyline: a base edge's way geometry, or the
// prefix/suffix slice of one produced when a virtual node splits an edge.
//
// PointList never includes graph nodes implicitly; whether tower
// endpoints are part of the slice is controlled by the caller via
// WayGeometryMode (see basegraph.WayGeometryMode).
type PointList []Point

// Length returns the cumulative haversine length of the polyline,
// i.e. the sum of consecutive-segment distances, not point-to-point
// great-circle distance across the whole list.
func (pl PointList) Length() float64 {
	var total float64
	for i := 1; i < len(pl); i++ {
		total += Haversine(pl[i-1], pl[i])
	}
	return total
}

// Reverse returns a new PointList with point order reversed.
func (pl PointList) Reverse() PointList {
	out := make(PointList, len(pl))
	for i, p := range pl {
		out[len(pl)-1-i] = p
	}
	return out
}

// Clone returns an independent copy of pl.
func (pl PointList) Clone() PointList {
	out := make(PointList, len(pl))
	copy(out, pl)
	return out
}

// SplitAtIndex splits pl around pillar index wayIndex, inserting the
// extra point p between pl[wayIndex] and pl[wayIndex+1]. It returns the
// prefix (pl[0..wayIndex] + p) and suffix (p + pl[wayIndex+1..]) slices,
// along with the cumulative length of each. wayIndex must satisfy
// 0 <= wayIndex < len(pl)-1 (p lies on the segment between those two
// pillars); callers snapping exactly onto an existing pillar should use
// wayIndex such that p == pl[wayIndex] or pl[wayIndex+1].
func (pl PointList) SplitAtIndex(wayIndex int, p Point) (prefix, suffix PointList, prefixLen, suffixLen float64) {
	prefix = make(PointList, 0, wayIndex+2)
	prefix = append(prefix, pl[:wayIndex+1]...)
	prefix = append(prefix, p)

	suffix = make(PointList, 0, len(pl)-wayIndex)
	suffix = append(suffix, p)
	suffix = append(suffix, pl[wayIndex+1:]...)

	prefixLen = prefix.Length()
	suffixLen = suffix.Length()
	return
}
