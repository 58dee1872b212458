// Package graph is the root of a routing engine's two hardest
// subsystems: the query graph and the spatial hash table.
//
// What lives here:
//
//   - basegraph — the dense-id, immutable-once-built road graph every
//     routing request is issued against.
//   - querygraph — a read-only overlay that splices GPS snap points
//     into a basegraph.Graph as virtual nodes and edges, scoped to one
//     request and safe to discard afterward.
//   - spatialhash — a byte-packed spatial index (bucket + overflow
//     chain addressing) used to find the base edges nearest a GPS fix
//     before it is spliced in.
//   - geo — the shared coordinate, polyline, and region types the
//     packages above build on.
//
// Why two layers instead of one mutable graph: a shared basegraph.Graph
// can be read concurrently by many in-flight routing requests precisely
// because it never changes after construction; per-request GPS snapping
// needs new nodes and edges, so those live in a throwaway querygraph
// overlay instead of being written into the shared graph.
//
//	go get github.com/katalvlaran/roadquery/basegraph
//	go get github.com/katalvlaran/roadquery/querygraph
//	go get github.com/katalvlaran/roadquery/spatialhash
package graph
