// File: modification.go
// Role: GraphModification builder — turns a batch of QueryResults into
// the virtual node/edge quadruples and per-real-node deltas a
// QueryGraph overlays onto the base graph.
package querygraph

import (
	"sort"

	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/geo"
)

// Slot offsets within a virtual node's quadruple of edge ids
// (edgeID = mainEdges + 4*k + slot). Slots 0/1 and 2/3 are reverse pairs,
// matching reversePos(e) = e XOR 1.
const (
	VEBase = iota
	VEBaseRev
	VEAdj
	VEAdjRev
)

type virtualEdge struct {
	base, adj   int
	distance    float64
	flags       basegraph.EdgeFlags
	pillars     geo.PointList // excludes both endpoints, like basegraph.edge
	closestEdge int           // the base edge this virtual edge was spliced from
	unfavored   bool
}

// GraphModification is the per-request delta a QueryGraph overlays onto
// an immutable base graph: new virtual nodes/edges, plus the additions
// and removals every affected real tower node's neighborhood needs.
type GraphModification struct {
	mainNodes, mainEdges int

	vNodeLat, vNodeLon []float64 // len V, indexed by k
	closestEdges       []int     // len V: base edge each virtual node was placed on

	virtualEdges []virtualEdge // len 4*V, indexed by 4*k+slot

	// additionalEdges[v] lists virtual edge ids (mainEdges-relative,
	// i.e. already offset) whose base endpoint is real node v.
	additionalEdges map[int][]int
	// removedEdges[v] is the set of base edge ids hidden from v's
	// neighborhood because they were split by a snap.
	removedEdges map[int]map[int]bool
}

// VirtualNodeCount returns V, the number of virtual nodes this
// modification introduces.
func (m *GraphModification) VirtualNodeCount() int { return len(m.vNodeLat) }

// snapSite is one non-TOWER result paired with its assigned virtual
// node id and its distance along the base edge from the edge's base
// tower, used to order and chain same-edge snaps.
type snapSite struct {
	k             int
	result        QueryResult
	cumDist       float64
	prefix, suffix geo.PointList // full edge polyline split at this snap, both endpoints inclusive
}

// BuildGraphModification computes the virtual topology for one batch of
// snap results against base graph g. Results classified TOWER are
// skipped: their routing endpoint is the existing tower node, no virtual
// node is needed.
func BuildGraphModification(g basegraph.ReadGraph, results []QueryResult) (*GraphModification, error) {
	m := &GraphModification{
		mainNodes:       g.Nodes(),
		mainEdges:       g.Edges(),
		additionalEdges: make(map[int][]int),
		removedEdges:    make(map[int]map[int]bool),
	}

	byEdge := make(map[int][]*snapSite)
	for _, r := range results {
		if r.Position == TOWER {
			continue
		}
		k := len(m.vNodeLat)
		m.vNodeLat = append(m.vNodeLat, r.SnappedPoint.Lat)
		m.vNodeLon = append(m.vNodeLon, r.SnappedPoint.Lon)
		m.closestEdges = append(m.closestEdges, r.ClosestEdge)
		m.virtualEdges = append(m.virtualEdges, virtualEdge{}, virtualEdge{}, virtualEdge{}, virtualEdge{})

		site := &snapSite{k: k, result: r}
		byEdge[r.ClosestEdge] = append(byEdge[r.ClosestEdge], site)
	}

	for edgeID, sites := range byEdge {
		if err := m.spliceEdge(g, edgeID, sites); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// spliceEdge computes distance-along-edge for every snap on edgeID,
// sorts them, and writes the resulting chain's virtual edge quadruples
// plus the real-node deltas at its two base-graph endpoints.
func (m *GraphModification) spliceEdge(g basegraph.ReadGraph, edgeID int, sites []*snapSite) error {
	state, err := g.GetEdgeIteratorState(edgeID, basegraph.NoNode)
	if err != nil {
		return err
	}
	u, v := state.BaseNode(), state.AdjNode()
	total := state.Distance()
	flags := state.Flags()
	full := state.FetchWayGeometry(basegraph.AllPoints)

	for _, s := range sites {
		prefix, suffix, prefixLen, _ := full.SplitAtIndex(s.result.WayIndex, s.result.SnappedPoint)
		s.cumDist = prefixLen
		s.prefix, s.suffix = prefix, suffix
	}
	sort.Slice(sites, func(i, j int) bool { return sites[i].cumDist < sites[j].cumDist })

	m.removedEdges[u] = setInsert(m.removedEdges[u], edgeID)
	m.removedEdges[v] = setInsert(m.removedEdges[v], edgeID)

	prevNode, prevCum := u, 0.0
	for i, s := range sites {
		virtualID := m.mainNodes + s.k
		baseDist := s.cumDist - prevCum

		var basePillars geo.PointList
		if i == 0 {
			basePillars = s.prefix[1 : len(s.prefix)-1]
		}
		m.setSlot(s.k, VEBase, prevNode, virtualID, baseDist, flags, basePillars, s.result.ClosestEdge)
		m.setSlot(s.k, VEBaseRev, virtualID, prevNode, baseDist, flags, basePillars.Reverse(), s.result.ClosestEdge)

		nextNode := v
		adjDist := total - s.cumDist
		var adjPillars geo.PointList
		if i+1 < len(sites) {
			nextNode = m.mainNodes + sites[i+1].k
			adjDist = sites[i+1].cumDist - s.cumDist
		} else {
			adjPillars = s.suffix[1 : len(s.suffix)-1]
		}
		m.setSlot(s.k, VEAdj, virtualID, nextNode, adjDist, flags, adjPillars, s.result.ClosestEdge)
		m.setSlot(s.k, VEAdjRev, nextNode, virtualID, adjDist, flags, adjPillars.Reverse(), s.result.ClosestEdge)

		prevNode, prevCum = virtualID, s.cumDist
	}

	for _, s := range sites {
		for slot := 0; slot < 4; slot++ {
			ve := m.virtualEdges[4*s.k+slot]
			if ve.base < m.mainNodes {
				eid := m.mainEdges + 4*s.k + slot
				m.additionalEdges[ve.base] = append(m.additionalEdges[ve.base], eid)
			}
		}
	}
	return nil
}

func (m *GraphModification) setSlot(k, slot, base, adj int, dist float64, flags basegraph.EdgeFlags, pillars geo.PointList, closestEdge int) {
	m.virtualEdges[4*k+slot] = virtualEdge{
		base: base, adj: adj, distance: dist, flags: flags,
		pillars: pillars, closestEdge: closestEdge,
	}
}

func setInsert(s map[int]bool, v int) map[int]bool {
	if s == nil {
		s = make(map[int]bool)
	}
	s[v] = true
	return s
}
