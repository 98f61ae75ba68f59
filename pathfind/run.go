// File: run.go
// Role: the single lazy-deletion loop shared by DijkstraMakowski, AStar,
// and SpanningTree. destination == -1 means "no short-circuit": exhaust
// the queue and return every node's distance and predecessor.
package pathfind

import (
	"container/heap"

	"github.com/makowski-graph/scgraph/sparsegraph"
)

// run executes the shared loop and returns per-node g-scores and
// predecessors. origin and (when destination != -1) destination are
// assumed already validated against g.N() by the caller.
func run(g *sparsegraph.Graph, origin, destination int, h Heuristic) ([]float64, []int, error) {
	n := g.N()
	dist := make([]float64, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = unreachable()
		prev[i] = -1
	}
	dist[origin] = 0

	if h == nil {
		h = zeroHeuristic
	}

	pq := make(nodeHeap, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &heapItem{node: origin, priority: h(origin), g: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*heapItem)
		u := item.node

		// Stale entry: a better path to u was already committed.
		if item.g > dist[u] {
			continue
		}

		if destination != -1 && u == destination {
			break
		}

		neighbors, err := g.Neighbors(u)
		if err != nil {
			// u came from a validated run over g.N(); this cannot
			// happen on a well-formed Graph.
			return nil, nil, ErrCorruptState
		}

		for v, w := range neighbors {
			candidate := dist[u] + w
			if candidate >= dist[v] {
				continue
			}
			dist[v] = candidate
			prev[v] = u
			heap.Push(&pq, &heapItem{node: v, priority: candidate + h(v), g: candidate})
		}
	}

	return dist, prev, nil
}

// reconstructPath walks prev from destination back to origin and
// reverses it. It returns ErrCorruptState if the walk hits -1 before
// reaching origin — the predecessor vector was malformed.
func reconstructPath(prev []int, origin, destination int) ([]int, error) {
	path := []int{destination}
	cur := destination
	for cur != origin {
		cur = prev[cur]
		if cur == -1 {
			return nil, ErrCorruptState
		}
		path = append(path, cur)
	}
	// Reverse in place.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
