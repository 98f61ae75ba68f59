package sparsegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension_UndoRestoresExactState(t *testing.T) {
	g := triangle()
	before := snapshot(t, g)

	ext := g.BeginExtension()
	synth := ext.AddNode()
	require.NoError(t, ext.AddArc(synth, 0, 12))
	require.NoError(t, ext.AddArc(synth, 1, 8))
	require.Equal(t, 4, g.N(), "expected N()=4 mid-extension")

	ext.Undo()

	after := snapshot(t, g)
	assert.Equal(t, before, after, "Undo did not restore exact state")
}

func TestExtension_UndoIdempotent(t *testing.T) {
	g := triangle()
	ext := g.BeginExtension()
	ext.AddNode()
	ext.Undo()
	before := snapshot(t, g)
	ext.Undo() // second call must be a no-op
	after := snapshot(t, g)
	assert.Equal(t, before, after, "second Undo() mutated the graph")
}

func TestExtension_DoesNotBumpVersion(t *testing.T) {
	g := triangle()
	v0 := g.Version()
	ext := g.BeginExtension()
	ext.AddNode()
	ext.Undo()
	assert.Equal(t, v0, g.Version(), "Extension lifecycle must not change Version()")
}

func snapshot(t *testing.T, g interface {
	N() int
	Neighbors(int) (map[int]float64, error)
}) []map[int]float64 {
	t.Helper()
	out := make([]map[int]float64, g.N())
	for i := 0; i < g.N(); i++ {
		nb, err := g.Neighbors(i)
		require.NoError(t, err)
		out[i] = nb
	}

	return out
}
