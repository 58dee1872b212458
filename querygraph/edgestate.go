// File: edgestate.go
// Role: basegraph.EdgeIteratorState for a virtual edge slot. Detach's
// reverse case is exactly the paired slot (slot XOR 1): virtual edge
// pairs are constructed with swapped endpoints, equal distance/flags,
// and reversed geometry already, so no separate swap logic is needed.
package querygraph

import (
	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/geo"
)

type virtualEdgeState struct {
	qg   *QueryGraph
	k    int
	slot int
}

func (s *virtualEdgeState) edge() virtualEdge { return s.qg.mod.virtualEdges[4*s.k+s.slot] }

func (s *virtualEdgeState) Edge() int         { return s.qg.mainEdges + 4*s.k + s.slot }
func (s *virtualEdgeState) BaseNode() int     { return s.edge().base }
func (s *virtualEdgeState) AdjNode() int      { return s.edge().adj }
func (s *virtualEdgeState) Distance() float64 { return s.edge().distance }
func (s *virtualEdgeState) Flags() basegraph.EdgeFlags { return s.edge().flags }

func (s *virtualEdgeState) FetchWayGeometry(mode basegraph.WayGeometryMode) geo.PointList {
	ve := s.edge()
	return basegraph.AssembleGeometry(mode, ve.base, ve.adj, ve.pillars, func(node int) geo.Point {
		return geo.Point{Lat: s.qg.na.GetLat(node), Lon: s.qg.na.GetLon(node)}
	})
}

func (s *virtualEdgeState) Detach(reverse bool) basegraph.EdgeIteratorState {
	if !reverse {
		cp := *s
		return &cp
	}
	return &virtualEdgeState{qg: s.qg, k: s.k, slot: s.slot ^ 1}
}
