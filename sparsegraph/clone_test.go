package sparsegraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClone_Independent(t *testing.T) {
	g := triangle()
	cp := g.Clone()
	require.NoError(t, cp.ModAddArc(0, 1, 100, true))
	w, _ := g.Weight(0, 1)
	assert.Equal(t, 1.0, w, "mutating clone affected original")
	assert.NotEqual(t, g.Version(), cp.Version(), "expected clone version to diverge after mutation")
}
