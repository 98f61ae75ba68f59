package pathfind

import "github.com/makowski-graph/scgraph/sparsegraph"

// DijkstraMakowski computes the shortest path from origin to destination
// over g using lazy-deletion Dijkstra. It is exact on any graph with
// non-negative weights and never loops on valid input.
func DijkstraMakowski(g *sparsegraph.Graph, origin, destination int) (PathResult, error) {
	n := g.N()
	if origin < 0 || origin >= n || destination < 0 || destination >= n {
		return PathResult{}, ErrInvalidNode
	}

	dist, prev, err := run(g, origin, destination, nil)
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
