// Package gridgraph builds a shortest-path graph over a rectangular
// X×Y grid of cells.
//
// What:
//
//   - GridGraph treats cell (y*X+x) as a graph node and connects it to
//     its 8 neighbors: cardinal moves cost 1, diagonal moves cost √2.
//   - Cells may be blocked, removing every edge touching them.
//   - A diagonal move is omitted if either of the two cells sharing an
//     edge with both endpoints is blocked (no squeezing through a
//     corner).
//   - Exterior walls (the grid's border) can be blocked automatically.
//
// Why:
//
//   - Tile-based pathfinding (game maps, warehouse routing) needs the
//     same lazy-deletion solver as geographic graphs, just over a
//     regular lattice instead of an arbitrary sparse network.
//
// GridGraph deliberately does not wrap geograph.GeoGraph: its queries
// address existing cells directly (no off-graph endpoint, hence no
// snapping and no antimeridian handling), so it builds straight on
// sparsegraph.Graph and reuses package pathfind's solvers.
//
// Complexity: NewGridGraph is O(X×Y); ShortestPath is O((N+E) log N).
package gridgraph
