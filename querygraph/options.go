package querygraph

// Option configures a QueryGraph at construction time.
type Option func(*QueryGraph)

// WithEdgeExplorerCache enables caching of a modified/virtual node's
// filtered edge list, keyed by the identity of the filter function
// passed to CreateEdgeExplorer. Caching trades a correctness caveat for
// speed: two structurally-equal but
// distinct filter closures will not share a cache entry, and the cache
// is not safe for concurrent use from multiple goroutines. Off by
// default, matching the "opt-in, single-threaded" resolution of the
// edge-explorer-caching open question.
func WithEdgeExplorerCache() Option {
	return func(qg *QueryGraph) { qg.useCache = true }
}
