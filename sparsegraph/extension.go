// File: extension.go
// Role: scoped, reversible graph mutation used to graft synthetic
// endpoints onto a shared Graph for the lifetime of a single query.
// Extension does not touch g.version: the grafted nodes are an
// implementation detail of one solve, not a durable change to the
// graph's identity, so cache entries keyed on Version are unaffected by
// an Extension's lifecycle.
//
// Undo() reverses every recorded change in LIFO order and must be called
// on every exit path, including solver errors — callers should defer it
// immediately after BeginExtension succeeds.
package sparsegraph

// Extension is a journal of reversible mutations applied to a Graph. It
// is not safe for concurrent use, and only one Extension may be open on
// a Graph at a time — temporary node insertion must be serialized.
type Extension struct {
	g           *Graph
	addedNodes  int              // count of nodes appended by this extension
	arcJournal  []journalArc     // arcs added, in insertion order
	undone      bool
}

type journalArc struct {
	i, j int
}

// BeginExtension opens a new Extension over g.
func (g *Graph) BeginExtension() *Extension {
	return &Extension{g: g}
}

// AddNode appends a node with no incident arcs and returns its id. The
// node is removed by Undo.
func (e *Extension) AddNode() int {
	e.g.adjMut.Lock()
	defer e.g.adjMut.Unlock()

	id := len(e.g.adjacency)
	e.g.adjacency = append(e.g.adjacency, make(map[int]float64))
	e.addedNodes++

	return id
}

// AddArc inserts a symmetric arc (i, j) with the given weight, recorded
// for removal by Undo. Unlike ModAddArc, AddArc does not check for an
// existing arc: it overwrites one silently, and Undo then deletes the
// arc rather than restoring its earlier weight. geograph only uses it to
// connect synthetic nodes, which have no prior arcs.
func (e *Extension) AddArc(i, j int, weight float64) error {
	e.g.adjMut.Lock()
	defer e.g.adjMut.Unlock()

	if i < 0 || i >= len(e.g.adjacency) || j < 0 || j >= len(e.g.adjacency) {
		return ErrInvalidNode
	}
	if i == j {
		return ErrSelfLoop
	}
	if weight < 0 {
		return ErrNegativeWeight
	}

	e.g.adjacency[i][j] = weight
	e.g.adjacency[j][i] = weight
	e.arcJournal = append(e.arcJournal, journalArc{i: i, j: j})

	return nil
}

// Undo reverses every arc and node addition recorded by this Extension,
// in LIFO order, restoring the Graph to exactly the state it had before
// BeginExtension was called. Undo is idempotent: calling it more than
// once is a no-op after the first call.
func (e *Extension) Undo() {
	if e.undone {
		return
	}
	e.undone = true

	e.g.adjMut.Lock()
	defer e.g.adjMut.Unlock()

	for k := len(e.arcJournal) - 1; k >= 0; k-- {
		a := e.arcJournal[k]
		delete(e.g.adjacency[a.i], a.j)
		delete(e.g.adjacency[a.j], a.i)
	}
	e.arcJournal = nil

	n := len(e.g.adjacency)
	e.g.adjacency = e.g.adjacency[:n-e.addedNodes]
	e.addedNodes = 0
}
