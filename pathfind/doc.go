// Package pathfind implements two shortest-path solvers over a
// sparsegraph.Graph: a lazy-deletion Dijkstra (DijkstraMakowski) and an
// A* variant (AStar) sharing the same lazy-decrease-key loop, plus
// SpanningTree (the destination-free pass used to seed the
// spanning-tree cache) and path reconstruction.
//
// The "Makowski" lazy-deletion tweak: rather than maintaining a separate
// visited set, a popped heap entry is compared against the current best
// known distance for that node and discarded if stale. This avoids an
// O(N) scan per pop on sparse graphs at the cost of extra heap entries.
//
// Complexity: O((N+E) log N) per solve. Space: O(N+E) for the heap in the
// worst case.
package pathfind
