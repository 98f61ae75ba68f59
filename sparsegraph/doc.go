// Package sparsegraph implements the sparse, weighted, undirected graph
// used as the common substrate for every solver in this module.
//
// A Graph is an ordered sequence of adjacency entries indexed 0..N-1; entry
// i maps neighbor index j to a finite, non-negative edge weight. The
// representation favors read-heavy sparse workloads (maritime/rail/road
// networks, grid graphs) over dense matrix storage.
//
// Mutation is not safe for concurrent use: adjMut guards the adjacency
// table and the monotonically increasing Version counter, but callers
// running queries while another goroutine mutates the same Graph will
// observe torn state. Concurrent read-only queries against an immutable
// Graph are fine. See Extension for the scoped, reversible mutation used
// to graft transient endpoints onto a shared Graph without holding a
// mutation lock across an entire solve.
package sparsegraph
