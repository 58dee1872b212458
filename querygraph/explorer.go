// File: explorer.go
// Role: CreateEdgeExplorer/EdgeIterator for QueryGraph.
// Unmodified real nodes defer straight to the base graph's own
// explorer; modified real nodes splice in additionalEdges and hide
// removedEdges; virtual nodes see exactly {VE_BASE_REV, VE_ADJ}.
package querygraph

import (
	"reflect"

	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/geo"
)

type explorerCacheKey struct {
	filterPtr uintptr
	node      int
}

type queryExplorer struct {
	qg     *QueryGraph
	filter basegraph.EdgeFilter
	it     queryIterator
}

// CreateEdgeExplorer returns an explorer over the combined base+virtual
// id space, restricted to edges admitted by filter (default AllEdges).
func (qg *QueryGraph) CreateEdgeExplorer(filter ...basegraph.EdgeFilter) basegraph.EdgeExplorer {
	f := basegraph.EdgeFilter(basegraph.AllEdges)
	if len(filter) > 0 && filter[0] != nil {
		f = filter[0]
	}
	return &queryExplorer{qg: qg, filter: f}
}

func (ex *queryExplorer) SetBaseNode(node int) basegraph.EdgeIterator {
	var list []basegraph.EdgeIteratorState

	switch {
	case node >= ex.qg.mainNodes:
		list = ex.virtualNodeList(node)
	case ex.isModified(node):
		list = ex.modifiedNodeList(node)
	default:
		base := ex.qg.base.CreateEdgeExplorer(basegraph.AllEdges).SetBaseNode(node)
		for base.Next() {
			if ex.filter(base) {
				list = append(list, base.Detach(false))
			}
		}
	}

	ex.it = queryIterator{list: list, pos: -1}
	return &ex.it
}

func (ex *queryExplorer) isModified(node int) bool {
	m := ex.qg.mod
	if _, ok := m.additionalEdges[node]; ok {
		return true
	}
	_, ok := m.removedEdges[node]
	return ok
}

func (ex *queryExplorer) virtualNodeList(node int) []basegraph.EdgeIteratorState {
	key := explorerCacheKey{filterPtr: filterIdentity(ex.filter), node: node}
	if cached, ok := ex.qg.getCache(key); ok {
		return cached
	}

	k := node - ex.qg.mainNodes
	var list []basegraph.EdgeIteratorState
	for _, slot := range [2]int{VEBaseRev, VEAdj} {
		st := &virtualEdgeState{qg: ex.qg, k: k, slot: slot}
		if ex.filter(st) {
			list = append(list, st)
		}
	}
	ex.qg.putCache(key, list)
	return list
}

func (ex *queryExplorer) modifiedNodeList(node int) []basegraph.EdgeIteratorState {
	key := explorerCacheKey{filterPtr: filterIdentity(ex.filter), node: node}
	if cached, ok := ex.qg.getCache(key); ok {
		return cached
	}

	m := ex.qg.mod
	removed := m.removedEdges[node]

	var list []basegraph.EdgeIteratorState
	base := ex.qg.base.CreateEdgeExplorer(basegraph.AllEdges).SetBaseNode(node)
	for base.Next() {
		if removed != nil && removed[base.Edge()] {
			continue
		}
		if ex.filter(base) {
			list = append(list, base.Detach(false))
		}
	}
	for _, eid := range m.additionalEdges[node] {
		idx := eid - ex.qg.mainEdges
		st := &virtualEdgeState{qg: ex.qg, k: idx / 4, slot: idx % 4}
		if ex.filter(st) {
			list = append(list, st)
		}
	}

	ex.qg.putCache(key, list)
	return list
}

func filterIdentity(f basegraph.EdgeFilter) uintptr {
	return reflect.ValueOf(f).Pointer()
}

func (qg *QueryGraph) getCache(key explorerCacheKey) ([]basegraph.EdgeIteratorState, bool) {
	if !qg.useCache {
		return nil, false
	}
	qg.cacheMu.Lock()
	defer qg.cacheMu.Unlock()
	list, ok := qg.cache[key]
	return list, ok
}

func (qg *QueryGraph) putCache(key explorerCacheKey, list []basegraph.EdgeIteratorState) {
	if !qg.useCache {
		return
	}
	qg.cacheMu.Lock()
	defer qg.cacheMu.Unlock()
	qg.cache[key] = list
}

// queryIterator is a single-pass, non-reentrant cursor over a
// precomputed edge-state list; SetBaseNode replaces it wholesale on
// every call, matching basegraph's "reused iterator, reset per call"
// convention.
type queryIterator struct {
	list []basegraph.EdgeIteratorState
	pos  int
}

func (it *queryIterator) Next() bool {
	it.pos++
	return it.pos < len(it.list)
}

func (it *queryIterator) cur() basegraph.EdgeIteratorState { return it.list[it.pos] }

func (it *queryIterator) Edge() int         { return it.cur().Edge() }
func (it *queryIterator) BaseNode() int     { return it.cur().BaseNode() }
func (it *queryIterator) AdjNode() int      { return it.cur().AdjNode() }
func (it *queryIterator) Distance() float64 { return it.cur().Distance() }
func (it *queryIterator) Flags() basegraph.EdgeFlags { return it.cur().Flags() }
func (it *queryIterator) FetchWayGeometry(mode basegraph.WayGeometryMode) geo.PointList {
	return it.cur().FetchWayGeometry(mode)
}
func (it *queryIterator) Detach(reverse bool) basegraph.EdgeIteratorState {
	return it.cur().Detach(reverse)
}
