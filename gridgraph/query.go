// File: query.go
// Role: ShortestPath over a GridGraph. Unlike geograph.GetShortestPath,
// origin and destination are already nodes in the graph, so there is no
// endpoint snapping and no rollback to perform.
package gridgraph

import (
	"math"

	"github.com/makowski-graph/scgraph/pathfind"
)

// Algorithm names a solver strategy, matching package geograph's naming
// so the two packages' query options read the same way.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmDijkstraMakowski Algorithm = "dijkstra_makowski"
	AlgorithmAStar            Algorithm = "a_star"
)

type queryOptions struct {
	algorithm Algorithm
}

func defaultQueryOptions() queryOptions {
	return queryOptions{algorithm: AlgorithmDijkstraMakowski}
}

// QueryOption configures a single ShortestPath call.
type QueryOption func(*queryOptions)

// WithAlgorithm selects the solver strategy. Default:
// AlgorithmDijkstraMakowski.
func WithAlgorithm(a Algorithm) QueryOption {
	return func(o *queryOptions) { o.algorithm = a }
}

// PathResult is the outcome of ShortestPath: Path holds the visited
// cells in order (Path[0]==origin, Path[len-1]==destination) and Length
// the summed edge weight along it.
type PathResult struct {
	Path   []Cell
	Length float64
}

// ShortestPath computes the shortest path between two existing cells.
// It returns ErrOutOfBounds if either cell lies outside the grid, and
// ErrBlockedCell if either is blocked.
func (g *GridGraph) ShortestPath(origin, destination Cell, opts ...QueryOption) (PathResult, error) {
	if !g.InBounds(origin) || !g.InBounds(destination) {
		return PathResult{}, ErrOutOfBounds
	}
	if g.IsBlocked(origin) || g.IsBlocked(destination) {
		return PathResult{}, ErrBlockedCell
	}

	cfg := defaultQueryOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	o, d := g.Index(origin), g.Index(destination)

	var result pathfind.PathResult
	var err error
	switch cfg.algorithm {
	case AlgorithmAStar:
		h := func(node int) float64 { return octileDistance(g.Coordinate(node), destination) }
		result, err = pathfind.AStar(g.graph, o, d, h)
	default:
		result, err = pathfind.DijkstraMakowski(g.graph, o, d)
	}
	if err != nil {
		return PathResult{}, err
	}

	path := make([]Cell, len(result.Path))
	for i, id := range result.Path {
		path[i] = g.Coordinate(id)
	}

	return PathResult{Path: path, Length: result.Length}, nil
}

// octileDistance is the admissible heuristic for the cardinal=1 /
// diagonal=√2 grid metric: the diagonal shortcut covers min(dx,dy)
// steps at √2 each, the remainder at 1 each.
func octileDistance(a, b Cell) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if dx < dy {
		dx, dy = dy, dx
	}

	return (dx-dy)*1 + dy*diagonalWeight
}
