package querygraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/querygraph"
)

// On a straight east-bound edge, favoring a 90-degree (east) heading
// while departing must unfavor only the westbound (VE_BASE_REV) side of
// the pair, never the eastbound (VE_ADJ) side.
func TestQueryGraph_EnforceHeading_StraightEastboundEdge(t *testing.T) {
	g := buildLine()
	snap := midpoint(g, 0, 1)
	qg, err := querygraph.New(g, []querygraph.QueryResult{
		{ClosestEdge: 0, SnappedPoint: snap, WayIndex: 0, Position: querygraph.EDGE},
	})
	require.NoError(t, err)

	vnode := g.Nodes()
	marked, err := qg.EnforceHeading(vnode, 90, false)
	require.NoError(t, err)
	assert.True(t, marked)

	veBaseRev := qg.Edges() - 3 // k=0, slot=VEBaseRev (westbound, virtual->node0)
	veAdj := qg.Edges() - 2     // k=0, slot=VEAdj (eastbound, virtual->node1)
	assert.True(t, qg.IsUnfavored(veBaseRev))
	assert.False(t, qg.IsUnfavored(veAdj))

	// the reverse pairs (VE_BASE, VE_ADJ_REV) are marked together with
	// their partner, since unfavoring always applies to a slot pair.
	veBase := qg.Edges() - 4
	assert.True(t, qg.IsUnfavored(veBase))
}

// EnforceHeading followed by ClearUnfavoredStatus leaves no edge marked
// unfavored.
func TestQueryGraph_ClearUnfavoredStatus_RoundTrip(t *testing.T) {
	g := buildLine()
	snap := midpoint(g, 0, 1)
	qg, err := querygraph.New(g, []querygraph.QueryResult{
		{ClosestEdge: 0, SnappedPoint: snap, WayIndex: 0, Position: querygraph.EDGE},
	})
	require.NoError(t, err)

	vnode := g.Nodes()
	_, err = qg.EnforceHeading(vnode, 90, false)
	require.NoError(t, err)
	assert.True(t, qg.IsUnfavored(qg.Edges()-3))

	qg.ClearUnfavoredStatus()
	for id := qg.Edges() - 4; id < qg.Edges(); id++ {
		assert.False(t, qg.IsUnfavored(id))
	}
}

func TestQueryGraph_EnforceHeading_NaN_IsNoop(t *testing.T) {
	g := buildLine()
	snap := midpoint(g, 0, 1)
	qg, err := querygraph.New(g, []querygraph.QueryResult{
		{ClosestEdge: 0, SnappedPoint: snap, WayIndex: 0, Position: querygraph.EDGE},
	})
	require.NoError(t, err)

	vnode := g.Nodes()
	marked, err := qg.EnforceHeading(vnode, math.NaN(), false)
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestQueryGraph_EnforceHeading_RejectsNonVirtualNode(t *testing.T) {
	g := buildLine()
	qg, err := querygraph.New(g, nil)
	require.NoError(t, err)

	_, err = qg.EnforceHeading(0, 90, false)
	assert.ErrorIs(t, err, querygraph.ErrInvalidArgument)
}

// TurnCost is always zero through a virtual node, since it has no
// real-junction semantics.
func TestQueryGraph_TurnCost_VirtualViaNodeIsZero(t *testing.T) {
	g := buildLine()
	snap := midpoint(g, 0, 1)
	qg, err := querygraph.New(g, []querygraph.QueryResult{
		{ClosestEdge: 0, SnappedPoint: snap, WayIndex: 0, Position: querygraph.EDGE},
	})
	require.NoError(t, err)

	vnode := g.Nodes()
	got := qg.TurnCost(qg.Edges()-4, vnode, qg.Edges()-2)
	assert.Zero(t, got)
}

// TurnCost falls back to zero when the base graph does not implement
// basegraph.TurnCostProvider.
func TestQueryGraph_TurnCost_NoProvider_IsZero(t *testing.T) {
	g := buildLine()
	qg, err := querygraph.New(g, nil)
	require.NoError(t, err)

	assert.Zero(t, qg.TurnCost(0, 1, 1))
	var _ basegraph.ReadGraph = qg
}
