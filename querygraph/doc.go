// Package querygraph overlays ephemeral GPS snaps onto an immutable
// basegraph.Graph for the lifetime of one routing request.
//
// A QueryGraph exposes the same basegraph.ReadGraph contract as the base
// graph it wraps, over an extended id space: nodes [0, mainNodes+V) and
// edges [0, mainEdges+4*V), where V is the number of snaps that landed
// strictly inside a base edge (PILLAR or EDGE snaps; TOWER snaps need no
// virtual node). Unmodified neighborhoods delegate straight to the base
// graph; neighborhoods touched by a snap are served from a
// GraphModification computed once at construction.
//
// QueryGraph never mutates the base graph and is not safe to share
// across concurrent routing requests — build one per request.
package querygraph
