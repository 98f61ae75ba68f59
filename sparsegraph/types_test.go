package sparsegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makowski-graph/scgraph/sparsegraph"
)

func triangle() *sparsegraph.Graph {
	return sparsegraph.NewGraph([]map[int]float64{
		0: {1: 1, 2: 4},
		1: {0: 1, 2: 2},
		2: {0: 4, 1: 2},
	})
}

func TestNewGraph_DefensiveCopy(t *testing.T) {
	src := []map[int]float64{0: {1: 5}, 1: {0: 5}}
	g := sparsegraph.NewGraph(src)
	src[0][1] = 99
	w, ok := g.Weight(0, 1)
	require.True(t, ok)
	assert.Equal(t, 5.0, w, "expected NewGraph to copy input")
}

func TestN_And_HasNode(t *testing.T) {
	g := triangle()
	assert.Equal(t, 3, g.N())
	assert.True(t, g.HasNode(2))
	assert.False(t, g.HasNode(3))
	assert.False(t, g.HasNode(-1))
}

func TestNeighbors_DefensiveCopy(t *testing.T) {
	g := triangle()
	nb, err := g.Neighbors(0)
	require.NoError(t, err)
	nb[1] = 999
	w, _ := g.Weight(0, 1)
	assert.Equal(t, 1.0, w, "Neighbors() copy leaked into graph")
}

func TestNeighbors_InvalidNode(t *testing.T) {
	g := triangle()
	_, err := g.Neighbors(10)
	assert.ErrorIs(t, err, sparsegraph.ErrInvalidNode)
}

func TestVersion_StartsAtZero(t *testing.T) {
	g := triangle()
	assert.Equal(t, uint64(0), g.Version())
}
