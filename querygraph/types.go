package querygraph

import "github.com/katalvlaran/roadquery/geo"

// SnappedPosition classifies where a GPS fix landed relative to the base
// edge it was snapped onto.
type SnappedPosition int

const (
	// TOWER means the snap coincides with a base-graph tower node; no
	// virtual node is introduced and the routing algorithm starts
	// directly at that tower.
	TOWER SnappedPosition = iota
	// PILLAR means the snap coincides with an intermediate geometry
	// point (a pillar) of the base edge.
	PILLAR
	// EDGE means the snap lies strictly between two geometry points.
	EDGE
)

func (p SnappedPosition) String() string {
	switch p {
	case TOWER:
		return "TOWER"
	case PILLAR:
		return "PILLAR"
	case EDGE:
		return "EDGE"
	default:
		return "UNKNOWN"
	}
}

// QueryResult is the outcome of snapping one GPS fix to the base graph,
// typically produced by querying a spatialhash.SpatialHashTable and then
// projecting onto the nearest edge.
type QueryResult struct {
	// ClosestEdge is the base edge id the fix was projected onto.
	ClosestEdge int
	// SnappedPoint is the projected (lat, lon).
	SnappedPoint geo.Point
	// WayIndex indexes into the edge's full geometry (base tower,
	// pillars, adj tower, in that order): the snap lies on the segment
	// between WayIndex and WayIndex+1.
	WayIndex int
	// Position classifies the snap; see SnappedPosition.
	Position SnappedPosition
}
