// File: graph.go
// Role: QueryGraph construction and the basegraph.ReadGraph contract.
// Node/edge ids below mainNodes/mainEdges delegate to the wrapped base
// graph unchanged; ids at or above those thresholds are served from
// the GraphModification built at construction.
package querygraph

import (
	"sync"

	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/geo"
)

var _ basegraph.ReadGraph = (*QueryGraph)(nil)

// QueryGraph is a read-only overlay splicing GPS snaps into an
// immutable base graph for one routing request. Build a fresh QueryGraph
// per request; it is not safe to share or reuse across requests.
type QueryGraph struct {
	base                 basegraph.ReadGraph
	mod                  *GraphModification
	mainNodes, mainEdges int
	na                    basegraph.NodeAccess
	bounds                geo.BBox

	unfavored map[int]bool

	useCache bool
	cacheMu  sync.Mutex
	cache    map[explorerCacheKey][]basegraph.EdgeIteratorState
}

// New builds a QueryGraph over base, splicing in every non-TOWER result.
func New(base basegraph.ReadGraph, results []QueryResult, opts ...Option) (*QueryGraph, error) {
	mod, err := BuildGraphModification(base, results)
	if err != nil {
		return nil, err
	}

	qg := &QueryGraph{
		base:      base,
		mod:       mod,
		mainNodes: base.Nodes(),
		mainEdges: base.Edges(),
		unfavored: make(map[int]bool),
	}
	for _, opt := range opts {
		opt(qg)
	}
	if qg.useCache {
		qg.cache = make(map[explorerCacheKey][]basegraph.EdgeIteratorState)
	}

	qg.na = extendedNodeAccess{base: base.NodeAccess(), mod: mod, mainNodes: qg.mainNodes}
	qg.bounds = extendBounds(base.Bounds(), mod)
	return qg, nil
}

// extendedNodeAccess resolves virtual node ids to their snapped
// coordinate and delegates everything else to the base accessor.
type extendedNodeAccess struct {
	base      basegraph.NodeAccess
	mod       *GraphModification
	mainNodes int
}

func (a extendedNodeAccess) GetLat(node int) float64 {
	if node >= a.mainNodes {
		return a.mod.vNodeLat[node-a.mainNodes]
	}
	return a.base.GetLat(node)
}

func (a extendedNodeAccess) GetLon(node int) float64 {
	if node >= a.mainNodes {
		return a.mod.vNodeLon[node-a.mainNodes]
	}
	return a.base.GetLon(node)
}

func extendBounds(base geo.BBox, mod *GraphModification) geo.BBox {
	b := base
	for i := range mod.vNodeLat {
		lat, lon := mod.vNodeLat[i], mod.vNodeLon[i]
		if lat < b.MinLat {
			b.MinLat = lat
		}
		if lat > b.MaxLat {
			b.MaxLat = lat
		}
		if lon < b.MinLon {
			b.MinLon = lon
		}
		if lon > b.MaxLon {
			b.MaxLon = lon
		}
	}
	return b
}

// Nodes returns mainNodes + V.
func (qg *QueryGraph) Nodes() int { return qg.mainNodes + qg.mod.VirtualNodeCount() }

// Edges returns mainEdges + 4*V.
func (qg *QueryGraph) Edges() int { return qg.mainEdges + 4*qg.mod.VirtualNodeCount() }

// NodeAccess returns the lat/lon accessor spanning base and virtual ids.
func (qg *QueryGraph) NodeAccess() basegraph.NodeAccess { return qg.na }

// Bounds returns the base graph's bounds extended to cover every
// virtual node.
func (qg *QueryGraph) Bounds() geo.BBox { return qg.bounds }

// IsVirtualNode reports whether id was introduced by this overlay.
func (qg *QueryGraph) IsVirtualNode(id int) bool { return id >= qg.mainNodes }

// IsVirtualEdge reports whether id was introduced by this overlay.
func (qg *QueryGraph) IsVirtualEdge(id int) bool { return id >= qg.mainEdges }

// GetOriginalEdgeFromVirtNode returns the base edge id a virtual node
// was placed on.
func (qg *QueryGraph) GetOriginalEdgeFromVirtNode(node int) (int, error) {
	if !qg.IsVirtualNode(node) {
		return 0, ErrInvalidArgument
	}
	return qg.mod.closestEdges[node-qg.mainNodes], nil
}

// GetEdgeIteratorState resolves edge across the base/virtual id space.
// A virtual edge requested with its base node as adjNode resolves to its
// reverse-paired slot (slot XOR 1).
func (qg *QueryGraph) GetEdgeIteratorState(edge, adjNode int) (basegraph.EdgeIteratorState, error) {
	if edge < qg.mainEdges {
		return qg.base.GetEdgeIteratorState(edge, adjNode)
	}
	idx := edge - qg.mainEdges
	if idx < 0 || idx >= len(qg.mod.virtualEdges) {
		return nil, basegraph.ErrEdgeOutOfRange
	}
	k, slot := idx/4, idx%4
	ve := qg.mod.virtualEdges[idx]

	switch {
	case adjNode == basegraph.NoNode || adjNode == ve.adj:
		return &virtualEdgeState{qg: qg, k: k, slot: slot}, nil
	case adjNode == ve.base:
		revSlot := slot ^ 1
		return &virtualEdgeState{qg: qg, k: k, slot: revSlot}, nil
	default:
		return nil, basegraph.ErrEdgeNotFound
	}
}

// GetOtherNode returns the endpoint of edge that is not node.
func (qg *QueryGraph) GetOtherNode(edge, node int) int {
	if edge < qg.mainEdges {
		return qg.base.GetOtherNode(edge, node)
	}
	ve := qg.mod.virtualEdges[edge-qg.mainEdges]
	if ve.base == node {
		return ve.adj
	}
	return ve.base
}

// IsAdjacentToNode reports whether node is one of edge's two endpoints.
func (qg *QueryGraph) IsAdjacentToNode(edge, node int) bool {
	if edge < qg.mainEdges {
		return qg.base.IsAdjacentToNode(edge, node)
	}
	ve := qg.mod.virtualEdges[edge-qg.mainEdges]
	return ve.base == node || ve.adj == node
}

// AddEdge always fails: QueryGraph is a read-only overlay.
func (qg *QueryGraph) AddEdge(base, adj int, distance float64, flags basegraph.EdgeFlags, pillars geo.PointList) (int, error) {
	return 0, basegraph.ErrNotSupported
}

// SetNode always fails: QueryGraph is a read-only overlay.
func (qg *QueryGraph) SetNode(node int, lat, lon float64) error {
	return basegraph.ErrNotSupported
}
