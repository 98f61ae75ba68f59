// Package spantree implements a spanning-tree cache: a mapping from
// (graph-version, algorithm, root, neighbor-signature) to a precomputed
// pathfind.SpanningTreeResult, so repeated queries sharing a root can
// reconstruct a path in O(path length) instead of recomputing the whole
// tree.
//
// The cache key uses an integer version counter bumped by every
// sparsegraph mutator rather than hashing the graph: cheap to compute,
// and any durable mutation naturally evicts every entry from the prior
// epoch simply by no longer matching on lookup.
package spantree
