// File: heading.go
// Role: heading enforcement and the unfavored-edge hint API, plus
// turn-cost pass-through.
package querygraph

import (
	"math"

	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/geo"
)

// unfavorThresholdRad is the angular tolerance beyond which an edge's
// tangent is considered misaligned with a favored heading (~100 degrees).
const unfavorThresholdRad = 1.74

// EnforceHeading penalizes the virtual edges on the side of virtualNode
// facing against favoredHeadingDeg (compass bearing, degrees clockwise
// from north). incoming selects which side is "against": the arriving
// pair {VE_BASE, VE_ADJ_REV} when true, the departing pair
// {VE_BASE_REV, VE_ADJ} when false. Returns true iff at least one pair
// was marked unfavored by this call, whether or not it already was. A
// NaN heading is a no-op.
func (qg *QueryGraph) EnforceHeading(virtualNode int, favoredHeadingDeg float64, incoming bool) (bool, error) {
	if !qg.IsVirtualNode(virtualNode) {
		return false, ErrInvalidArgument
	}
	if math.IsNaN(favoredHeadingDeg) {
		return false, nil
	}

	k := virtualNode - qg.mainNodes
	slots := [2]int{VEBaseRev, VEAdj}
	if incoming {
		slots = [2]int{VEBase, VEAdjRev}
	}

	thresholdDeg := unfavorThresholdRad * 180 / math.Pi
	marked := false
	for _, slot := range slots {
		ve := qg.mod.virtualEdges[4*k+slot]
		geom := basegraph.AssembleGeometry(basegraph.AllPoints, ve.base, ve.adj, ve.pillars, func(node int) geo.Point {
			return geo.Point{Lat: qg.na.GetLat(node), Lon: qg.na.GetLon(node)}
		})
		if len(geom) < 2 {
			continue
		}

		var tangent float64
		if ve.adj == virtualNode {
			tangent = bearingDeg(geom[len(geom)-2], geom[len(geom)-1])
		} else {
			tangent = bearingDeg(geom[0], geom[1])
		}

		if angularDiffDeg(tangent, favoredHeadingDeg) > thresholdDeg {
			qg.markUnfavoredPair(k, slot)
			marked = true
		}
	}
	return marked, nil
}

// UnfavorVirtualEdgePair marks virtualEdge and its reverse pair
// unfavored directly, without a heading computation.
func (qg *QueryGraph) UnfavorVirtualEdgePair(virtualNode, virtualEdge int) error {
	if !qg.IsVirtualNode(virtualNode) {
		return ErrInvalidArgument
	}
	idx := virtualEdge - qg.mainEdges
	k, slot := idx/4, idx%4
	if k != virtualNode-qg.mainNodes {
		return ErrInvalidArgument
	}
	qg.markUnfavoredPair(k, slot)
	return nil
}

func (qg *QueryGraph) markUnfavoredPair(k, slot int) {
	pair := slot ^ 1
	qg.unfavored[qg.mainEdges+4*k+slot] = true
	qg.unfavored[qg.mainEdges+4*k+pair] = true
}

// ClearUnfavoredStatus resets every tracked unfavored edge.
func (qg *QueryGraph) ClearUnfavoredStatus() {
	for id := range qg.unfavored {
		delete(qg.unfavored, id)
	}
}

// IsUnfavored reports whether edgeID currently carries the unfavored hint.
func (qg *QueryGraph) IsUnfavored(edgeID int) bool { return qg.unfavored[edgeID] }

// bearingDeg returns the compass bearing (degrees clockwise from north)
// from a to b, using a planar approximation valid for the short terminal
// segments heading enforcement inspects.
func bearingDeg(a, b geo.Point) float64 {
	dLat := b.Lat - a.Lat
	dLon := b.Lon - a.Lon
	deg := math.Atan2(dLon, dLat) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	return deg
}

// angularDiffDeg returns the absolute angular distance between two
// compass bearings, in [0, 180].
func angularDiffDeg(a, b float64) float64 {
	d := math.Mod(a-b+540, 360) - 180
	if d < 0 {
		d = -d
	}
	return d
}

// TurnCost delegates to the base graph's TurnCostProvider, substituting
// each virtual edge argument with the base edge it was spliced from.
// A virtual viaNode has no real-junction turn semantics (it is a
// mid-edge splice point, not an intersection) and always costs 0.
func (qg *QueryGraph) TurnCost(fromEdge, viaNode, toEdge int) float64 {
	if qg.IsVirtualNode(viaNode) {
		return 0
	}
	tcp, ok := qg.base.(basegraph.TurnCostProvider)
	if !ok {
		return 0
	}
	return tcp.TurnCost(qg.resolveBaseEdge(fromEdge), viaNode, qg.resolveBaseEdge(toEdge))
}

func (qg *QueryGraph) resolveBaseEdge(edge int) int {
	if edge < qg.mainEdges {
		return edge
	}
	return qg.mod.virtualEdges[edge-qg.mainEdges].closestEdge
}
