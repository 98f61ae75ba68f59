// Package geograph implements GeoGraph: a sparsegraph.Graph paired with
// a parallel node table of (lat, lon) coordinates, plus GetShortestPath,
// which lets callers query a route between two arbitrary earth
// coordinates that need not coincide with any graph node.
//
// GetShortestPath locates nearby existing nodes for each endpoint,
// grafts two synthetic nodes and their candidate edges onto the graph
// via sparsegraph.Extension, runs the requested solver, translates the
// result back to coordinates, and rolls the extension back — all before
// returning, on every exit path including solver errors.
//
// A GeoGraph is not safe for concurrent queries: the endpoint-snapping
// protocol mutates shared adjacency state for the duration of one
// solve, so GetShortestPath serializes internally with a mutex,
// following the same lock-per-concern shape used elsewhere in this
// module for shared mutable graph state.
package geograph
