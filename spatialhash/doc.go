// Package spatialhash implements a compact, byte-packed spatial index
// mapping (latitude, longitude) to small value payloads.
//
// A SpatialHashTable stores everything in one contiguous byte buffer,
// addressed by a fixed-width bucket array with in-bucket overflow
// chaining (see bucket.go for the exact byte layout). Keys are produced
// by SpatialKeyAlgo, a bit-interleaved quadrant bisection over WGS-84
// (see keyalgo.go).
//
// The table answers three kinds of query: by exact key (Query, QueryKey),
// by region (GetNodesShape with a geo.Shape, via quadtree descent over
// the key space), and by circle (GetNodesCircle, a convenience wrapper
// over GetNodesShape).
// Deletion and online resize are not supported; once built, a table is
// safe for concurrent readers, never for a concurrent writer and
// reader.
package spatialhash
