package querygraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/internal/routesim"
	"github.com/katalvlaran/roadquery/querygraph"
)

// A shortest-path query from one virtual node to another must route
// through the spliced topology and reconstruct the same total distance
// a direct base-graph query would give for the unsplit edges.
func TestQueryGraph_ShortestPath_ThroughVirtualNodes(t *testing.T) {
	g := buildLine()
	snapA := midpoint(g, 0, 1) // on edgeA, 1000m
	snapC := midpoint(g, 2, 3) // on edgeC, 1500m

	qg, err := querygraph.New(g, []querygraph.QueryResult{
		{ClosestEdge: 0, SnappedPoint: snapA, WayIndex: 0, Position: querygraph.EDGE},
		{ClosestEdge: 2, SnappedPoint: snapC, WayIndex: 0, Position: querygraph.EDGE},
	})
	require.NoError(t, err)

	vA, vC := g.Nodes(), g.Nodes()+1
	res, err := routesim.ShortestPath(qg, vA, vC, basegraph.OutEdges)
	require.NoError(t, err)

	// Cross-check against the same edges fetched directly (not through
	// the explorer the Dijkstra run used): VE_ADJ of vA (k=0), the
	// untouched edgeB, and VE_BASE of vC (k=1).
	veAdjA, err := qg.GetEdgeIteratorState(qg.Edges()-4*2+2, basegraph.NoNode) // mainEdges+4*0+VEAdj
	require.NoError(t, err)
	veBaseC, err := qg.GetEdgeIteratorState(qg.Edges()-4*2+4, basegraph.NoNode) // mainEdges+4*1+VEBase
	require.NoError(t, err)

	want := veAdjA.Distance() + 2000.0 + veBaseC.Distance()
	assert.InDelta(t, want, res.Dist, 1e-6)
	require.Len(t, res.Nodes, 4)
	assert.Equal(t, []int{vA, 1, 2, vC}, res.Nodes)
}

// A modified real node (one whose incident base edge was split) still
// reaches its other, unmodified neighbors through their intact base
// edges, and no longer exposes the split edge directly.
func TestQueryGraph_ModifiedRealNode_Neighborhood(t *testing.T) {
	g := buildLine()
	snap := midpoint(g, 0, 1)
	qg, err := querygraph.New(g, []querygraph.QueryResult{
		{ClosestEdge: 0, SnappedPoint: snap, WayIndex: 0, Position: querygraph.EDGE},
	})
	require.NoError(t, err)

	exp := qg.CreateEdgeExplorer()
	it := exp.SetBaseNode(1) // node1: endpoint of split edgeA, and of intact edgeB
	var adj []int
	for it.Next() {
		adj = append(adj, it.AdjNode())
	}
	assert.NotContains(t, adj, 0) // edgeA replaced, node0 no longer directly adjacent
	assert.Contains(t, adj, 2)    // edgeB untouched
}

func TestQueryGraph_EdgeExplorerCache_ReturnsConsistentResults(t *testing.T) {
	g := buildLine()
	snap := midpoint(g, 0, 1)
	qg, err := querygraph.New(g, []querygraph.QueryResult{
		{ClosestEdge: 0, SnappedPoint: snap, WayIndex: 0, Position: querygraph.EDGE},
	}, querygraph.WithEdgeExplorerCache())
	require.NoError(t, err)

	vnode := g.Nodes()
	exp := qg.CreateEdgeExplorer()
	var first, second []int
	it := exp.SetBaseNode(vnode)
	for it.Next() {
		first = append(first, it.Edge())
	}
	it = exp.SetBaseNode(vnode)
	for it.Next() {
		second = append(second, it.Edge())
	}
	assert.Equal(t, first, second)
}

func TestQueryGraph_InvalidArgument_OnNonVirtualNode(t *testing.T) {
	g := buildLine()
	qg, err := querygraph.New(g, nil)
	require.NoError(t, err)

	_, err = qg.GetOriginalEdgeFromVirtNode(0)
	assert.ErrorIs(t, err, querygraph.ErrInvalidArgument)
}
