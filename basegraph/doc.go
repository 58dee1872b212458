// Package basegraph defines the read-only graph contract that the
// routing layer consumes (dense node/edge ids, per-edge geometry and
// access flags, an edge explorer per node) and provides a concrete,
// immutable in-memory implementation of it.
//
// basegraph.Graph is the "external collaborator" from the routing
// engine's point of view: OSM ingestion, contraction hierarchies, and
// on-disk persistence all live upstream of this package and are out of
// scope here. What this package guarantees is the shape querygraph needs
// to splice itself on top of: nodes numbered [0, N), edges numbered
// [0, E), and a ReadGraph interface any overlay (querygraph.QueryGraph
// included) can implement to masquerade as a base graph to algorithms
// that only know how to consume the interface.
package basegraph
