package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makowski-graph/scgraph/haversine"
	"github.com/makowski-graph/scgraph/pathfind"
	"github.com/makowski-graph/scgraph/sparsegraph"
)

func TestAStar_NilHeuristicMatchesDijkstra(t *testing.T) {
	g := square()
	d, err := pathfind.DijkstraMakowski(g, 0, 2)
	require.NoError(t, err)
	a, err := pathfind.AStar(g, 0, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, d.Length, a.Length)
}

func TestAStar_Unreachable(t *testing.T) {
	g := sparsegraph.NewGraph([]map[int]float64{0: {}, 1: {}})
	_, err := pathfind.AStar(g, 0, 1, nil)
	assert.ErrorIs(t, err, pathfind.ErrUnreachableDestination)
}

// buildRandomGeoGraph constructs a random connected graph of n nodes with
// coordinates, where every edge weight is >= the haversine distance
// between its endpoints so a haversine heuristic stays admissible.
func buildRandomGeoGraph(t *testing.T, n int, seed int64) (*sparsegraph.Graph, []haversine.Coordinate) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	coords := make([]haversine.Coordinate, n)
	for i := range coords {
		coords[i] = haversine.Coordinate{Lat: rng.Float64()*140 - 70, Lon: rng.Float64()*360 - 180}
	}
	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}
	// Guarantee connectivity with a random spanning chain, then sprinkle
	// extra edges.
	order := rng.Perm(n)
	for i := 1; i < n; i++ {
		u, v := order[i-1], order[i]
		w := haversine.Distance(coords[u], coords[v], haversine.Kilometers) * (1 + rng.Float64())
		adj[u][v] = w
		adj[v][u] = w
	}
	extra := n
	for k := 0; k < extra; k++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if u == v {
			continue
		}
		if _, exists := adj[u][v]; exists {
			continue
		}
		w := haversine.Distance(coords[u], coords[v], haversine.Kilometers) * (1 + rng.Float64())
		adj[u][v] = w
		adj[v][u] = w
	}

	return sparsegraph.NewGraph(adj), coords
}

// TestAStar_OptimalityMatchesDijkstra verifies that on a random
// non-negative-weight geographic graph, AStar with a haversine heuristic
// returns the same length as DijkstraMakowski.
func TestAStar_OptimalityMatchesDijkstra(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		g, coords := buildRandomGeoGraph(t, 40, seed)
		origin, destination := 0, 39
		want, err := pathfind.DijkstraMakowski(g, origin, destination)
		require.NoErrorf(t, err, "seed %d", seed)

		h := func(node int) float64 {
			return haversine.Distance(coords[node], coords[destination], haversine.Kilometers)
		}
		got, err := pathfind.AStar(g, origin, destination, h)
		require.NoErrorf(t, err, "seed %d", seed)

		assert.InDeltaf(t, want.Length, got.Length, 1e-6, "seed %d: dijkstra=%v astar=%v diverge", seed, want.Length, got.Length)
	}
}
