// File: gridgraph.go
// Role: NewGridGraph and the 8-connected adjacency construction,
// built on pathfind/sparsegraph's index-based adjacency model with
// row-major cell indexing and precomputed neighbor offsets.
package gridgraph

import (
	"math"

	"github.com/makowski-graph/scgraph/sparsegraph"
)

// cardinalOffsets are the 4 orthogonal neighbor deltas, weight 1.
var cardinalOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// diagonalOffsets are the 4 diagonal neighbor deltas, weight √2.
var diagonalOffsets = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

// diagonalWeight is the cost of a diagonal move.
var diagonalWeight = math.Sqrt2

// GridGraph is a shortest-path graph over an X×Y cell grid. Cell (x,y)
// maps to node id y*X+x.
type GridGraph struct {
	graph   *sparsegraph.Graph
	x, y    int
	blocked map[Cell]bool
}

// NewGridGraph constructs a GridGraph of the given dimensions. Every
// in-bounds, unblocked cell connects to its unblocked 8-neighbors;
// diagonal moves are omitted if either cell sharing an edge with both
// endpoints is blocked, so a path can never squeeze through a blocked
// corner.
func NewGridGraph(x, y int, opts ...Option) (*GridGraph, error) {
	if x <= 0 || y <= 0 {
		return nil, ErrInvalidDimensions
	}

	cfg := buildOptions{blocks: make(map[Cell]bool)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.exteriorWalls {
		addExteriorWalls(cfg.blocks, x, y)
	}

	index := func(c Cell) int { return c.Y*x + c.X }
	inBounds := func(c Cell) bool { return c.X >= 0 && c.X < x && c.Y >= 0 && c.Y < y }

	n := x * y
	adjacency := make([]map[int]float64, n)
	for i := range adjacency {
		adjacency[i] = make(map[int]float64)
	}

	for cy := 0; cy < y; cy++ {
		for cx := 0; cx < x; cx++ {
			cell := Cell{X: cx, Y: cy}
			if cfg.blocks[cell] {
				continue
			}
			u := index(cell)

			for _, d := range cardinalOffsets {
				nb := Cell{X: cx + d[0], Y: cy + d[1]}
				if !inBounds(nb) || cfg.blocks[nb] {
					continue
				}
				adjacency[u][index(nb)] = 1
			}

			for _, d := range diagonalOffsets {
				nb := Cell{X: cx + d[0], Y: cy + d[1]}
				if !inBounds(nb) || cfg.blocks[nb] {
					continue
				}
				// The two cells sharing an edge with both cell and nb;
				// either blocked means the diagonal would squeeze
				// through a corner.
				shared1 := Cell{X: cx + d[0], Y: cy}
				shared2 := Cell{X: cx, Y: cy + d[1]}
				if cfg.blocks[shared1] || cfg.blocks[shared2] {
					continue
				}
				adjacency[u][index(nb)] = diagonalWeight
			}
		}
	}

	blocked := make(map[Cell]bool, len(cfg.blocks))
	for c := range cfg.blocks {
		blocked[c] = true
	}

	return &GridGraph{
		graph:   sparsegraph.NewGraph(adjacency),
		x:       x,
		y:       y,
		blocked: blocked,
	}, nil
}

// addExteriorWalls marks every border cell of an X×Y grid as blocked.
func addExteriorWalls(blocks map[Cell]bool, x, y int) {
	for cx := 0; cx < x; cx++ {
		blocks[Cell{X: cx, Y: 0}] = true
		blocks[Cell{X: cx, Y: y - 1}] = true
	}
	for cy := 0; cy < y; cy++ {
		blocks[Cell{X: 0, Y: cy}] = true
		blocks[Cell{X: x - 1, Y: cy}] = true
	}
}

// X returns the grid's width.
func (g *GridGraph) X() int { return g.x }

// Y returns the grid's height.
func (g *GridGraph) Y() int { return g.y }

// N returns the number of nodes in the underlying graph (X*Y).
func (g *GridGraph) N() int { return g.graph.N() }

// Graph exposes the underlying sparsegraph.Graph, e.g. for
// sparsegraph.ValidateGraph.
func (g *GridGraph) Graph() *sparsegraph.Graph { return g.graph }

// InBounds reports whether c lies within the grid.
func (g *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.x && c.Y >= 0 && c.Y < g.y
}

// IsBlocked reports whether c is a blocked cell. A cell outside the
// grid is not considered blocked by this method; callers should check
// InBounds first.
func (g *GridGraph) IsBlocked(c Cell) bool {
	return g.blocked[c]
}

// Index converts a cell to its node id (y*X+x).
func (g *GridGraph) Index(c Cell) int {
	return c.Y*g.x + c.X
}

// Coordinate converts a node id back to its cell.
func (g *GridGraph) Coordinate(id int) Cell {
	return Cell{X: id % g.x, Y: id / g.x}
}
