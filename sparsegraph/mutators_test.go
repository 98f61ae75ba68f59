package sparsegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makowski-graph/scgraph/sparsegraph"
)

func TestModAddNode_BumpsVersion(t *testing.T) {
	g := triangle()
	v0 := g.Version()
	id := g.ModAddNode()
	assert.Equal(t, 3, id)
	assert.Equal(t, v0+1, g.Version())
	deg, _ := g.Degree(3)
	assert.Equal(t, 0, deg)
}

func TestModAddArc_Symmetric(t *testing.T) {
	g := triangle()
	id := g.ModAddNode()
	require.NoError(t, g.ModAddArc(id, 0, 7, false))
	w, ok := g.Weight(0, id)
	require.True(t, ok)
	assert.Equal(t, 7.0, w)
}

func TestModAddArc_DuplicateRejectedUnlessOverwrite(t *testing.T) {
	g := triangle()
	assert.ErrorIs(t, g.ModAddArc(0, 1, 9, false), sparsegraph.ErrDuplicateArc)
	require.NoError(t, g.ModAddArc(0, 1, 9, true))
	w, _ := g.Weight(0, 1)
	assert.Equal(t, 9.0, w)
}

func TestModAddArc_RejectsSelfLoopAndNegative(t *testing.T) {
	g := triangle()
	assert.ErrorIs(t, g.ModAddArc(0, 0, 1, false), sparsegraph.ErrSelfLoop)
	id := g.ModAddNode()
	assert.ErrorIs(t, g.ModAddArc(0, id, -1, false), sparsegraph.ErrNegativeWeight)
}

func TestModRemoveArc(t *testing.T) {
	g := triangle()
	require.NoError(t, g.ModRemoveArc(0, 1))
	_, ok := g.Weight(0, 1)
	assert.False(t, ok, "expected arc removed")
	_, ok = g.Weight(1, 0)
	assert.False(t, ok, "expected symmetric back-arc removed")
	assert.ErrorIs(t, g.ModRemoveArc(0, 1), sparsegraph.ErrMissingArc)
}

func TestModRemoveNode_FastPathLastIndex(t *testing.T) {
	g := triangle()
	require.NoError(t, g.ModRemoveNode(2))
	assert.Equal(t, 2, g.N())
	_, ok := g.Weight(0, 1)
	assert.True(t, ok, "expected remaining arc 0-1 intact")
}

func TestModRemoveNode_RenumbersHigherIndices(t *testing.T) {
	// 0-1-2-3 path graph; remove node 1, expect node 0 isolated and arc
	// 1(was2)-2(was3) kept with its weight.
	g := sparsegraph.NewGraph([]map[int]float64{
		0: {1: 1},
		1: {0: 1, 2: 2},
		2: {1: 2, 3: 3},
		3: {2: 3},
	})
	require.NoError(t, g.ModRemoveNode(1))
	assert.Equal(t, 3, g.N())
	_, ok := g.Weight(0, 1)
	assert.False(t, ok, "node 0 should have lost its arc to the removed node")
	w, ok := g.Weight(1, 2) // formerly node 2 -> 3
	require.True(t, ok)
	assert.Equal(t, 3.0, w)
}

func TestModRemoveNode_InvalidIndex(t *testing.T) {
	g := triangle()
	assert.ErrorIs(t, g.ModRemoveNode(99), sparsegraph.ErrInvalidNode)
}
