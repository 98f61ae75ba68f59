package pathfind

import "github.com/makowski-graph/scgraph/sparsegraph"

// SpanningTree runs the same lazy-deletion loop as DijkstraMakowski but
// with no destination short-circuit, so it exhausts the queue and
// returns every node's distance and predecessor.
// Complexity: O((N+E) log N). Used to seed the spanning-tree cache for
// repeated one-to-many queries sharing an origin (see package spantree).
func SpanningTree(g *sparsegraph.Graph, origin int) (SpanningTreeResult, error) {
	n := g.N()
	if origin < 0 || origin >= n {
		return SpanningTreeResult{}, ErrInvalidNode
	}

	dist, prev, err := run(g, origin, -1, nil)
	if err != nil {
		return SpanningTreeResult{}, err
	}

	return SpanningTreeResult{Origin: origin, Predecessors: prev, Distances: dist}, nil
}

// PathFromTree reconstructs a PathResult for destination from a
// SpanningTreeResult previously computed with Origin as the root. It
// returns ErrUnreachableDestination if destination was never reached and
// ErrCorruptState if the predecessor vector is malformed.
func PathFromTree(tree SpanningTreeResult, destination int) (PathResult, error) {
	if destination < 0 || destination >= len(tree.Predecessors) {
		return PathResult{}, ErrInvalidNode
	}
	if destination != tree.Origin && tree.Predecessors[destination] == -1 {
		return PathResult{}, ErrUnreachableDestination
	}

	path, err := reconstructPath(tree.Predecessors, tree.Origin, destination)
	if err != nil {
		return PathResult{}, err
	}

	return PathResult{Path: path, Length: tree.Distances[destination]}, nil
}
