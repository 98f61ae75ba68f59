package pathfind

import "math"

// Heuristic estimates the remaining cost from node to the solve's
// destination. It must be admissible (never overestimate the true
// remaining distance) or A* loses its optimality guarantee; AStar
// assumes but does not check this.
type Heuristic func(node int) float64

// zeroHeuristic makes AStar's loop equivalent to DijkstraMakowski when no
// heuristic is supplied.
func zeroHeuristic(int) float64 { return 0 }

// PathResult is the outcome of a single origin-to-destination solve.
type PathResult struct {
	Path   []int   // Path[0] == origin, Path[len-1] == destination
	Length float64 // sum of edge weights along Path
}

// SpanningTreeResult is the outcome of a destination-free solve rooted
// at Origin: Predecessors[Origin] == -1, and Predecessors[i] == -1 for
// every unreachable i. Distances[i] is math.Inf(1) for unreachable i.
type SpanningTreeResult struct {
	Origin       int
	Predecessors []int
	Distances    []float64
}

// heapItem is a (node, priority) pair in the lazy-deletion priority
// queue. g is the true path cost at the time this item was pushed;
// priority is g for DijkstraMakowski or g+h(node) for AStar. Staleness
// is always checked against g, never against priority, so admissible
// heuristics never cause premature discards.
type heapItem struct {
	node     int
	priority float64
	g        float64
}

// nodeHeap implements container/heap.Interface, ordered by priority
// ascending, with lazy decrease-key: rather than updating an entry's
// priority in place, a cheaper entry is pushed fresh and the stale one
// is discarded on pop.
type nodeHeap []*heapItem

func (h nodeHeap) Len() int            { return len(h) }
func (h nodeHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h nodeHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x interface{}) { *h = append(*h, x.(*heapItem)) }
func (h *nodeHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

// unreachable is the distance recorded for a node the solve never reaches.
func unreachable() float64 { return math.Inf(1) }
