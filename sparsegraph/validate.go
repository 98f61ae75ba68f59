// File: validate.go
// Role: opt-in validator for the adjacency invariants a Graph must
// hold: no out-of-range or self-loop arcs, symmetric weights, and
// non-negative weights.
package sparsegraph

import (
	"fmt"
	"math"
)

// ValidateGraph checks that every neighbor index is in range with no
// self-loops, that weights are symmetric, and that weights are finite
// and non-negative (parallel edges can't occur at all under the map
// representation). It returns nil on success and wraps ErrInvalidGraph
// with the first offending entry on failure. Validation is not run on
// every solve; callers opt in explicitly.
func ValidateGraph(g *Graph) error {
	g.adjMut.RLock()
	defer g.adjMut.RUnlock()

	n := len(g.adjacency)
	for i, row := range g.adjacency {
		for j, w := range row {
			if j < 0 || j >= n {
				return fmt.Errorf("%w: entry %d references out-of-range neighbor %d", ErrInvalidGraph, i, j)
			}
			if j == i {
				return fmt.Errorf("%w: entry %d has a self-loop", ErrInvalidGraph, i)
			}
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return fmt.Errorf("%w: arc %d-%d has invalid weight %v", ErrInvalidGraph, i, j, w)
			}
			back, ok := g.adjacency[j][i]
			if !ok {
				return fmt.Errorf("%w: arc %d-%d is not symmetric (missing back-edge)", ErrInvalidGraph, i, j)
			}
			if back != w {
				return fmt.Errorf("%w: arc %d-%d is asymmetric (%v vs %v)", ErrInvalidGraph, i, j, w, back)
			}
		}
	}

	return nil
}
