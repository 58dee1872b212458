package basegraph

import "errors"

// Sentinel errors for the basegraph package.
var (
	// ErrNodeOutOfRange indicates a node id outside [0, Nodes()).
	ErrNodeOutOfRange = errors.New("basegraph: node id out of range")

	// ErrEdgeOutOfRange indicates an edge id outside [0, Edges()).
	ErrEdgeOutOfRange = errors.New("basegraph: edge id out of range")

	// ErrEdgeNotFound indicates GetEdgeIteratorState could not find an
	// edge matching the requested (edge, adjNode) pair.
	ErrEdgeNotFound = errors.New("basegraph: edge not found for requested adjacent node")

	// ErrNotSupported indicates an attempted mutation of a read-only
	// graph view (e.g. a querygraph.QueryGraph overlay).
	ErrNotSupported = errors.New("basegraph: operation not supported on a read-only graph view")

	// ErrBadDistance indicates a negative edge distance was supplied.
	ErrBadDistance = errors.New("basegraph: edge distance must be non-negative")
)
