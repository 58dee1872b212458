// Package routesim implements a minimal Dijkstra traversal over
// basegraph.ReadGraph, used by querygraph's tests to exercise real
// shortest-path queries against the overlay instead of inspecting its
// topology directly.
//
// Unlike a production router this carries no turn-cost awareness, A*
// heuristic, or CH shortcuts; it exists to drive EdgeExplorer/
// EdgeIteratorState the way a real routing algorithm would.
package routesim

import (
	"container/heap"
	"errors"
	"math"

	"github.com/katalvlaran/roadquery/basegraph"
)

// ErrNodeOutOfRange indicates Source or Target is outside [0, g.Nodes()).
var ErrNodeOutOfRange = errors.New("routesim: node id out of range")

// Result is the outcome of a single-source, single-target Dijkstra run.
type Result struct {
	Dist float64 // math.Inf(1) if Target is unreachable
	// Nodes is the node sequence Source..Target, nil if unreachable.
	Nodes []int
	// Edges is the edge id sequence traversed, one per hop in Nodes, nil
	// if unreachable. Edges[i] connects Nodes[i] to Nodes[i+1].
	Edges []int
}

// ShortestPath runs Dijkstra from source to target over g, filtering
// edges with filter (basegraph.OutEdges by default).
func ShortestPath(g basegraph.ReadGraph, source, target int, filter basegraph.EdgeFilter) (Result, error) {
	if source < 0 || source >= g.Nodes() || target < 0 || target >= g.Nodes() {
		return Result{}, ErrNodeOutOfRange
	}
	if filter == nil {
		filter = basegraph.OutEdges
	}

	dist := make(map[int]float64)
	prevNode := make(map[int]int)
	prevEdge := make(map[int]int)
	visited := make(map[int]bool)

	pq := make(nodePQ, 0)
	heap.Init(&pq)
	dist[source] = 0
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	explorer := g.CreateEdgeExplorer(filter)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u := item.id
		if visited[u] {
			continue
		}
		visited[u] = true
		if u == target {
			break
		}

		it := explorer.SetBaseNode(u)
		for it.Next() {
			v := it.AdjNode()
			if visited[v] {
				continue
			}
			nd := dist[u] + it.Distance()
			if cur, ok := dist[v]; !ok || nd < cur {
				dist[v] = nd
				prevNode[v] = u
				prevEdge[v] = it.Edge()
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			}
		}
	}

	d, ok := dist[target]
	if !ok {
		return Result{Dist: math.Inf(1)}, nil
	}

	var nodes []int
	var edges []int
	for n := target; ; {
		nodes = append(nodes, n)
		if n == source {
			break
		}
		edges = append(edges, prevEdge[n])
		n = prevNode[n]
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}
	return Result{Dist: d, Nodes: nodes, Edges: edges}, nil
}

type nodeItem struct {
	id   int
	dist float64
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
