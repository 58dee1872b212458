package basegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadquery/geo"
)

func twoNodeGraph(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph(2)
	g.SetNode(0, 0, 0)
	g.SetNode(1, 0, 1)
	_, err := g.AddEdge(0, 1, 111320, BothDirections, geo.PointList{})
	require.NoError(t, err)
	return g
}

func TestGraphBasics(t *testing.T) {
	g := twoNodeGraph(t)
	assert.Equal(t, 2, g.Nodes())
	assert.Equal(t, 1, g.Edges())
	assert.Equal(t, 1, g.GetOtherNode(0, 0))
	assert.Equal(t, 0, g.GetOtherNode(0, 1))
	assert.True(t, g.IsAdjacentToNode(0, 0))
	assert.False(t, g.IsAdjacentToNode(0, 99))
}

func TestGetEdgeIteratorStateDirections(t *testing.T) {
	g := twoNodeGraph(t)

	fwd, err := g.GetEdgeIteratorState(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, fwd.BaseNode())
	assert.Equal(t, 1, fwd.AdjNode())

	rev, err := g.GetEdgeIteratorState(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, rev.BaseNode())
	assert.Equal(t, 0, rev.AdjNode())
	assert.Equal(t, fwd.Distance(), rev.Distance())

	_, err = g.GetEdgeIteratorState(0, 42)
	assert.ErrorIs(t, err, ErrEdgeNotFound)

	noCare, err := g.GetEdgeIteratorState(0, NoNode)
	require.NoError(t, err)
	assert.Equal(t, 0, noCare.BaseNode())
}

func TestEdgeExplorerVisitsIncidentEdges(t *testing.T) {
	g := NewGraph(3)
	for i := 0; i < 3; i++ {
		g.SetNode(i, float64(i), float64(i))
	}
	_, err := g.AddEdge(0, 1, 10, BothDirections, nil)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, 20, BothDirections, nil)
	require.NoError(t, err)

	explorer := g.CreateEdgeExplorer()
	it := explorer.SetBaseNode(1)
	var seen []int
	for it.Next() {
		seen = append(seen, it.Edge())
	}
	assert.ElementsMatch(t, []int{0, 1}, seen)

	it = explorer.SetBaseNode(0)
	require.True(t, it.Next())
	assert.Equal(t, 0, it.Edge())
	assert.Equal(t, 0, it.BaseNode())
	assert.Equal(t, 1, it.AdjNode())
	assert.False(t, it.Next())
}

func TestEdgeExplorerFilter(t *testing.T) {
	g := NewGraph(2)
	g.SetNode(0, 0, 0)
	g.SetNode(1, 0, 1)
	oneWay := flagForward // forward only: 0->1 traversable, not 1->0
	_, err := g.AddEdge(0, 1, 5, oneWay, nil)
	require.NoError(t, err)

	outOnly := g.CreateEdgeExplorer(OutEdges)
	it := outOnly.SetBaseNode(0)
	assert.True(t, it.Next())

	it = outOnly.SetBaseNode(1)
	assert.False(t, it.Next(), "reverse direction is not forward-traversable")
}

func TestFetchWayGeometryModes(t *testing.T) {
	g := NewGraph(2)
	g.SetNode(0, 0, 0)
	g.SetNode(1, 0, 2)
	pillars := geo.PointList{{Lat: 0, Lon: 1}}
	_, err := g.AddEdge(0, 1, 222640, BothDirections, pillars)
	require.NoError(t, err)

	state, err := g.GetEdgeIteratorState(0, 1)
	require.NoError(t, err)

	all := state.FetchWayGeometry(AllPoints)
	require.Len(t, all, 3)
	assert.Equal(t, geo.Point{Lat: 0, Lon: 0}, all[0])
	assert.Equal(t, geo.Point{Lat: 0, Lon: 2}, all[2])

	pillarOnly := state.FetchWayGeometry(PillarOnly)
	require.Len(t, pillarOnly, 1)
	assert.Equal(t, geo.Point{Lat: 0, Lon: 1}, pillarOnly[0])
}

func TestDetachReverse(t *testing.T) {
	g := twoNodeGraph(t)
	state, err := g.GetEdgeIteratorState(0, 1)
	require.NoError(t, err)

	reversed := state.Detach(true)
	assert.Equal(t, state.AdjNode(), reversed.BaseNode())
	assert.Equal(t, state.BaseNode(), reversed.AdjNode())
}
