package geograph

import (
	"fmt"

	"github.com/makowski-graph/scgraph/haversine"
	"github.com/makowski-graph/scgraph/spantree"
	"github.com/makowski-graph/scgraph/sparsegraph"
)

// NewGeoGraph builds a GeoGraph from an adjacency table and an aligned
// coordinate table. The two must be the same length (ErrMismatchedTable)
// and every coordinate must be in range (ErrInvalidCoordinate); beyond
// that, NewGeoGraph does not validate adjacency invariants — call
// sparsegraph.ValidateGraph(gg.Graph()) explicitly if needed.
func NewGeoGraph(adjacency []map[int]float64, coords []haversine.Coordinate) (*GeoGraph, error) {
	if len(adjacency) != len(coords) {
		return nil, ErrMismatchedTable
	}
	for i, c := range coords {
		if err := validateCoordinate(c); err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
	}

	cp := make([]haversine.Coordinate, len(coords))
	copy(cp, coords)

	return &GeoGraph{
		graph:  sparsegraph.NewGraph(adjacency),
		coords: cp,
		cache:  spantree.NewCache(),
	}, nil
}

func validateCoordinate(c haversine.Coordinate) error {
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return ErrInvalidCoordinate
	}

	return nil
}

// Graph exposes the underlying sparsegraph.Graph for callers that need
// direct access (e.g. ValidateGraph).
func (gg *GeoGraph) Graph() *sparsegraph.Graph {
	return gg.graph
}

// N returns the number of nodes currently in the GeoGraph.
func (gg *GeoGraph) N() int {
	return gg.graph.N()
}

// Coordinate returns the (lat, lon) of node id.
func (gg *GeoGraph) Coordinate(id int) (haversine.Coordinate, error) {
	if id < 0 || id >= len(gg.coords) {
		return haversine.Coordinate{}, sparsegraph.ErrInvalidNode
	}

	return gg.coords[id], nil
}
