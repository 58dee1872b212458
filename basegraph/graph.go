// File: graph.go
// Role: concrete in-memory ReadGraph implementation with a small build
//       API (AddEdge). Nodes are dense ints [0,N); edges are dense ints
//       [0,E) assigned in insertion order.
// Concurrency: muEdge guards edges/adjacency during the build phase, the
//       way core.Graph guards vertices/edges/adjacencyList. Once built,
//       a Graph is meant to be read by many concurrent routing requests
//       without further mutation: callers must stop calling AddEdge
//       before sharing a Graph across goroutines.
package basegraph

import (
	"sort"
	"sync"

	"github.com/katalvlaran/roadquery/geo"
)

type edge struct {
	base, adj int
	distance  float64
	flags     EdgeFlags
	geometry  geo.PointList // pillars only, excluding both endpoints
}

var _ ReadGraph = (*Graph)(nil)

// Graph is the concrete, dense-id, immutable (post-build) base graph.
type Graph struct {
	muEdge sync.RWMutex

	nodeLat, nodeLon []float64
	bounds           geo.BBox
	boundsSet        bool

	edges     []edge
	adjacency [][]int // adjacency[node] = edge ids incident to node, either direction
}

// NewGraph allocates a Graph with nNodes nodes, each initially at
// (0,0); SetNode must be called to give nodes their real coordinates
// before any distance-sensitive operation is meaningful.
func NewGraph(nNodes int) *Graph {
	return &Graph{
		nodeLat:   make([]float64, nNodes),
		nodeLon:   make([]float64, nNodes),
		adjacency: make([][]int, nNodes),
	}
}

// SetNode assigns the coordinate of an existing node and folds it into
// the graph's bounds.
func (g *Graph) SetNode(node int, lat, lon float64) {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	g.nodeLat[node] = lat
	g.nodeLon[node] = lon

	p := geo.Point{Lat: lat, Lon: lon}
	if !g.boundsSet {
		g.bounds = geo.BBox{MinLat: p.Lat, MaxLat: p.Lat, MinLon: p.Lon, MaxLon: p.Lon}
		g.boundsSet = true
		return
	}
	if p.Lat < g.bounds.MinLat {
		g.bounds.MinLat = p.Lat
	}
	if p.Lat > g.bounds.MaxLat {
		g.bounds.MaxLat = p.Lat
	}
	if p.Lon < g.bounds.MinLon {
		g.bounds.MinLon = p.Lon
	}
	if p.Lon > g.bounds.MaxLon {
		g.bounds.MaxLon = p.Lon
	}
}

// AddEdge appends a new base->adj edge with the given distance, flags,
// and pillar geometry (excluding both endpoints). It returns the new
// edge's dense id.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(base, adj int, distance float64, flags EdgeFlags, pillars geo.PointList) (int, error) {
	if base < 0 || base >= len(g.nodeLat) || adj < 0 || adj >= len(g.nodeLat) {
		return 0, ErrNodeOutOfRange
	}
	if distance < 0 {
		return 0, ErrBadDistance
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	eid := len(g.edges)
	g.edges = append(g.edges, edge{base: base, adj: adj, distance: distance, flags: flags, geometry: pillars.Clone()})
	g.adjacency[base] = append(g.adjacency[base], eid)
	if adj != base {
		g.adjacency[adj] = append(g.adjacency[adj], eid)
	}
	return eid, nil
}

// Nodes returns the dense node count N; valid node ids are [0, N).
func (g *Graph) Nodes() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.nodeLat)
}

// Edges returns the dense edge count E; valid edge ids are [0, E).
func (g *Graph) Edges() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return len(g.edges)
}

// NodeAccess returns the lat/lon accessor for this graph's nodes.
func (g *Graph) NodeAccess() NodeAccess { return graphNodeAccess{g} }

// Bounds returns the bounding box of every node added via SetNode.
func (g *Graph) Bounds() geo.BBox {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	return g.bounds
}

type graphNodeAccess struct{ g *Graph }

func (a graphNodeAccess) GetLat(node int) float64 {
	a.g.muEdge.RLock()
	defer a.g.muEdge.RUnlock()
	return a.g.nodeLat[node]
}

func (a graphNodeAccess) GetLon(node int) float64 {
	a.g.muEdge.RLock()
	defer a.g.muEdge.RUnlock()
	return a.g.nodeLon[node]
}

// GetOtherNode returns the endpoint of edge that is not node.
func (g *Graph) GetOtherNode(edgeID, node int) int {
	g.muEdge.RLock()
	e := g.edges[edgeID]
	g.muEdge.RUnlock()
	if e.base == node {
		return e.adj
	}
	return e.base
}

// IsAdjacentToNode reports whether node is one of edge's two endpoints.
func (g *Graph) IsAdjacentToNode(edgeID, node int) bool {
	g.muEdge.RLock()
	e := g.edges[edgeID]
	g.muEdge.RUnlock()
	return e.base == node || e.adj == node
}

// GetEdgeIteratorState returns the directed view of edgeID whose
// BaseNode matches adjNode's counterpart; passing NoNode returns the
// edge in its originally-inserted base->adj direction.
func (g *Graph) GetEdgeIteratorState(edgeID, adjNode int) (EdgeIteratorState, error) {
	if edgeID < 0 || edgeID >= g.Edges() {
		return nil, ErrEdgeOutOfRange
	}
	g.muEdge.RLock()
	e := g.edges[edgeID]
	g.muEdge.RUnlock()

	na := g.NodeAccess()
	switch {
	case adjNode == NoNode || adjNode == e.adj:
		return &baseEdgeState{na: na, edgeID: edgeID, base: e.base, adj: e.adj, distance: e.distance, flags: e.flags, geometry: e.geometry}, nil
	case adjNode == e.base:
		flags := e.flags&^BothDirections | (e.flags&flagForward)<<1 | (e.flags&flagBackward)>>1
		return &baseEdgeState{na: na, edgeID: edgeID, base: e.adj, adj: e.base, distance: e.distance, flags: flags, geometry: e.geometry.Reverse()}, nil
	default:
		return nil, ErrEdgeNotFound
	}
}

// CreateEdgeExplorer returns an explorer visiting edges incident to a
// node, restricted to those admitted by filter (default AllEdges).
func (g *Graph) CreateEdgeExplorer(filter ...EdgeFilter) EdgeExplorer {
	f := AllEdges
	if len(filter) > 0 && filter[0] != nil {
		f = filter[0]
	}
	return &baseExplorer{g: g, filter: f}
}

type baseExplorer struct {
	g      *Graph
	filter EdgeFilter
	it     baseIterator
}

func (ex *baseExplorer) SetBaseNode(node int) EdgeIterator {
	ex.g.muEdge.RLock()
	incident := append([]int(nil), ex.g.adjacency[node]...)
	ex.g.muEdge.RUnlock()

	sort.Ints(incident)
	ex.it = baseIterator{g: ex.g, node: node, edges: incident, pos: -1, filter: ex.filter}
	return &ex.it
}

// baseIterator walks the edges incident to node in ascending edge-id
// order, applying filter; Next must be called before each row read.
type baseIterator struct {
	g      *Graph
	node   int
	edges  []int
	pos    int
	filter EdgeFilter
	cur    *baseEdgeState
}

func (it *baseIterator) Next() bool {
	for {
		it.pos++
		if it.pos >= len(it.edges) {
			it.cur = nil
			return false
		}
		eid := it.edges[it.pos]
		state, err := it.g.GetEdgeIteratorState(eid, it.g.GetOtherNode(eid, it.node))
		if err != nil {
			continue
		}
		be := state.(*baseEdgeState)
		if it.filter != nil && !it.filter(be) {
			continue
		}
		it.cur = be
		return true
	}
}

func (it *baseIterator) Edge() int                                      { return it.cur.Edge() }
func (it *baseIterator) BaseNode() int                                  { return it.cur.BaseNode() }
func (it *baseIterator) AdjNode() int                                   { return it.cur.AdjNode() }
func (it *baseIterator) Distance() float64                              { return it.cur.Distance() }
func (it *baseIterator) Flags() EdgeFlags                               { return it.cur.Flags() }
func (it *baseIterator) FetchWayGeometry(mode WayGeometryMode) geo.PointList { return it.cur.FetchWayGeometry(mode) }
func (it *baseIterator) Detach(reverse bool) EdgeIteratorState          { return it.cur.Detach(reverse) }

// baseEdgeState is the EdgeIteratorState for a base-graph edge.
type baseEdgeState struct {
	na        NodeAccess
	edgeID    int
	base, adj int
	distance  float64
	flags     EdgeFlags
	geometry  geo.PointList // pillars, base->adj order
}

func (e *baseEdgeState) Edge() int         { return e.edgeID }
func (e *baseEdgeState) BaseNode() int     { return e.base }
func (e *baseEdgeState) AdjNode() int      { return e.adj }
func (e *baseEdgeState) Distance() float64 { return e.distance }
func (e *baseEdgeState) Flags() EdgeFlags  { return e.flags }

func (e *baseEdgeState) FetchWayGeometry(mode WayGeometryMode) geo.PointList {
	return AssembleGeometry(mode, e.base, e.adj, e.geometry, func(node int) geo.Point {
		return geo.Point{Lat: e.na.GetLat(node), Lon: e.na.GetLon(node)}
	})
}

func (e *baseEdgeState) Detach(reverse bool) EdgeIteratorState {
	if !reverse {
		cp := *e
		return &cp
	}
	flags := e.flags&^BothDirections | (e.flags&flagForward)<<1 | (e.flags&flagBackward)>>1
	return &baseEdgeState{na: e.na, edgeID: e.edgeID, base: e.adj, adj: e.base, distance: e.distance, flags: flags, geometry: e.geometry.Reverse()}
}

// AssembleGeometry is shared by basegraph and querygraph edge states: it
// prepends/appends endpoint coordinates to the pillar list according to
// mode. nodeCoord resolves a node id (base, virtual, or adj) to its Point.
func AssembleGeometry(mode WayGeometryMode, base, adj int, pillars geo.PointList, nodeCoord func(int) geo.Point) geo.PointList {
	out := make(geo.PointList, 0, len(pillars)+2)
	if mode == BaseAndPillars || mode == AllPoints {
		out = append(out, nodeCoord(base))
	}
	out = append(out, pillars...)
	if mode == PillarsAndAdj || mode == AllPoints {
		out = append(out, nodeCoord(adj))
	}
	return out
}
