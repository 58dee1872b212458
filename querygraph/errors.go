package querygraph

import "errors"

// Sentinel errors specific to querygraph. Mutation and edge-lookup
// failures reuse basegraph's own sentinels (basegraph.ErrNotSupported,
// basegraph.ErrEdgeNotFound) so routing code written against the
// basegraph.ReadGraph contract never needs to know which implementation
// it is holding.
var (
	// ErrInvalidArgument indicates a non-virtual node id was passed to
	// an operation that only makes sense for virtual nodes
	// (EnforceHeading, UnfavorVirtualEdgePair).
	ErrInvalidArgument = errors.New("querygraph: argument is not a virtual node")
)
