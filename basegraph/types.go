package basegraph

import "github.com/katalvlaran/roadquery/geo"

// NoNode is the "don't care" sentinel accepted by GetEdgeIteratorState in
// place of a specific adjacent node id: the caller has no preference for
// which direction of the edge is returned.
const NoNode = -1

// EdgeFlags is an opaque, caller-defined bitset carried verbatim on every
// edge. Tag parsing / access-restriction encoding is out of scope for
// this module; basegraph only needs to copy flags through unchanged
// when an edge is split by a virtual node. A basegraph edge viewed from
// its adj node (base and adj swapped) reports its Forward and Backward
// bits swapped as well.
type EdgeFlags uint32

// Forward reports whether the edge may be traversed base->adj.
func (f EdgeFlags) Forward() bool { return f&flagForward != 0 }

// Backward reports whether the edge may be traversed adj->base.
func (f EdgeFlags) Backward() bool { return f&flagBackward != 0 }

const (
	flagForward EdgeFlags = 1 << iota
	flagBackward
)

// BothDirections is the default flag value for an undirected road segment.
const BothDirections EdgeFlags = flagForward | flagBackward

// WayGeometryMode selects which endpoints are included when fetching an
// edge's way geometry, mirroring the base/virtual edge splicing rules of
// querygraph.GraphModification: the base tower, the adjacent tower,
// both, or neither.
type WayGeometryMode int

const (
	// PillarOnly excludes both endpoints, returning only the pillars.
	PillarOnly WayGeometryMode = iota
	// BaseAndPillars includes the base endpoint and the pillars.
	BaseAndPillars
	// PillarsAndAdj includes the pillars and the adjacent endpoint.
	PillarsAndAdj
	// AllPoints includes both endpoints and the pillars.
	AllPoints
)

// NodeAccess exposes lat/lon lookups for any node id, base or virtual.
type NodeAccess interface {
	GetLat(node int) float64
	GetLon(node int) float64
}

// EdgeIteratorState is a detached snapshot of one directed traversal of
// one edge: baseNode is where the traversal starts, adjNode where it
// ends. The same physical edge viewed from its other endpoint is a
// distinct EdgeIteratorState with BaseNode/AdjNode swapped.
type EdgeIteratorState interface {
	Edge() int
	BaseNode() int
	AdjNode() int
	Distance() float64
	Flags() EdgeFlags
	FetchWayGeometry(mode WayGeometryMode) geo.PointList
	// Detach returns an independent copy, optionally with baseNode/adjNode
	// (and geometry) swapped. Detach is necessary before an iterator is
	// advanced or reused if the caller wants to retain this state.
	Detach(reverse bool) EdgeIteratorState
}

// EdgeIterator is a single-pass, non-reentrant cursor over the edges
// incident to the node an EdgeExplorer was last set to. Next must be
// called before the first Edge()/BaseNode()/... access; EdgeIterator
// embeds EdgeIteratorState so the current row can be read directly, or
// detached via Detach to survive past the next Next() call.
type EdgeIterator interface {
	EdgeIteratorState
	Next() bool
}

// EdgeFilter decides whether an edge should be visible to an explorer.
// A nil EdgeFilter (or AllEdges) admits every edge.
type EdgeFilter func(state EdgeIteratorState) bool

// AllEdges is the default EdgeFilter: it admits every edge.
func AllEdges(EdgeIteratorState) bool { return true }

// OutEdges admits edges traversable forward from their base node.
func OutEdges(state EdgeIteratorState) bool { return state.Flags().Forward() }

// InEdges admits edges traversable backward into their base node, i.e.
// usable to arrive at BaseNode() from AdjNode().
func InEdges(state EdgeIteratorState) bool { return state.Flags().Backward() }

// EdgeExplorer hands out a (reusable, non-reentrant) EdgeIterator rooted
// at a given node. Callers must finish consuming one SetBaseNode's
// iterator before calling SetBaseNode again on the same explorer.
type EdgeExplorer interface {
	SetBaseNode(node int) EdgeIterator
}

// ReadGraph is the read-only contract both basegraph.Graph and
// querygraph.QueryGraph satisfy. Routing algorithms are written against
// this interface alone and never need to know whether they are looking
// at the raw base graph or a per-request overlay.
type ReadGraph interface {
	Nodes() int
	Edges() int
	NodeAccess() NodeAccess
	Bounds() geo.BBox
	GetEdgeIteratorState(edge, adjNode int) (EdgeIteratorState, error)
	CreateEdgeExplorer(filter ...EdgeFilter) EdgeExplorer
	GetOtherNode(edge, node int) int
	IsAdjacentToNode(edge, node int) bool
}

// TurnCostProvider is an optional capability a ReadGraph implementation
// may offer alongside ReadGraph: a per-(fromEdge, viaNode, toEdge) turn
// penalty. querygraph.QueryGraph checks for it via a type assertion and
// passes turn-cost queries through to the base graph, substituting any
// virtual edge argument with the base edge it was spliced from.
type TurnCostProvider interface {
	TurnCost(fromEdge, viaNode, toEdge int) float64
}
