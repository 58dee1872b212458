package querygraph_test

import (
	"github.com/katalvlaran/roadquery/basegraph"
	"github.com/katalvlaran/roadquery/geo"
)

// buildLine constructs a 4-node straight eastbound base graph:
//
//	0 --edgeA(1000m)--> 1 --edgeB(2000m)--> 2 --edgeC(1500m)--> 3
//
// All nodes share latitude 10.0; longitude increases by 0.1 per hop.
// Edge distances are authoritative weights independent of the
// straight-line geometry, matching basegraph's own edge model.
func buildLine() *basegraph.Graph {
	g := basegraph.NewGraph(4)
	g.SetNode(0, 10.0, 10.0)
	g.SetNode(1, 10.0, 10.1)
	g.SetNode(2, 10.0, 10.2)
	g.SetNode(3, 10.0, 10.3)

	mustAdd(g, 0, 1, 1000, basegraph.BothDirections)
	mustAdd(g, 1, 2, 2000, basegraph.BothDirections)
	mustAdd(g, 2, 3, 1500, basegraph.BothDirections)
	return g
}

func mustAdd(g *basegraph.Graph, base, adj int, dist float64, flags basegraph.EdgeFlags) int {
	eid, err := g.AddEdge(base, adj, dist, flags, nil)
	if err != nil {
		panic(err)
	}
	return eid
}

func midpoint(g *basegraph.Graph, node1, node2 int) geo.Point {
	na := g.NodeAccess()
	return geo.Point{
		Lat: (na.GetLat(node1) + na.GetLat(node2)) / 2,
		Lon: (na.GetLon(node1) + na.GetLon(node2)) / 2,
	}
}
