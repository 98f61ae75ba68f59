package spantree

import (
	"sync"

	"github.com/makowski-graph/scgraph/pathfind"
)

// Key identifies one cached spanning tree: the graph's mutation epoch,
// the solver that produced it, its root node, and a signature of the
// root's neighbor set. The signature matters because a synthetic
// endpoint node is assigned the same numeric id across unrelated
// queries (it is always appended at the current N); without it, two
// queries whose origins land on the same id but snap to different
// candidate nodes (or the same candidates at different circuity-scaled
// weights) would alias to the same entry. Two queries share a cache hit
// only when Root's actual graft — the same synthetic-neighbors set at
// the same graph-version — agrees, which Neighbors encodes.
type Key struct {
	Version   uint64
	Algorithm string
	Root      int
	Neighbors string
}

// Cache is a mapping from Key to pathfind.SpanningTreeResult. It is safe
// for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]pathfind.SpanningTreeResult
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]pathfind.SpanningTreeResult)}
}

// Get returns the cached tree for key, if present.
func (c *Cache) Get(key Key) (pathfind.SpanningTreeResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	tree, ok := c.entries[key]

	return tree, ok
}

// Put stores tree under key, overwriting any prior entry.
func (c *Cache) Put(key Key, tree pathfind.SpanningTreeResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = tree
}

// GetOrCompute returns the cached tree for key if present; otherwise it
// calls compute, stores the result, and returns it. compute errors are
// not cached.
func (c *Cache) GetOrCompute(key Key, compute func() (pathfind.SpanningTreeResult, error)) (pathfind.SpanningTreeResult, error) {
	if tree, ok := c.Get(key); ok {
		return tree, nil
	}

	tree, err := compute()
	if err != nil {
		return pathfind.SpanningTreeResult{}, err
	}
	c.Put(key, tree)

	return tree, nil
}
