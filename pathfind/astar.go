package pathfind

import "github.com/makowski-graph/scgraph/sparsegraph"

// AStar computes the shortest path from origin to destination using the
// priority key dist[node]+h(node). If h is nil, AStar is equivalent to
// DijkstraMakowski. Predecessors and distances track true path cost
// (g-scores); h is only ever consulted for ordering.
//
// h must be admissible — it must never overestimate the true remaining
// distance to destination — or the returned path may not be optimal.
// AStar assumes this and does not check it.
func AStar(g *sparsegraph.Graph, origin, destination int, h Heuristic) (PathResult, error) {
	n := g.N()
	if origin < 0 || origin >= n || destination < 0 || destination >= n {
		return PathResult{}, ErrInvalidNode
	}

	dist, prev, err := run(g, origin, destination, h)
	if err != nil {
		return PathResult{}, err
	}
	if prev[destination] == -1 && origin != destination {
		return PathResult{}, ErrUnreachableDestination
	}

	path, err := reconstructPath(prev, origin, destination)
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Path: path, Length: dist[destination]}, nil
}
