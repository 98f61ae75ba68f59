// File: mutators.go
// Role: durable mutators. Unlike the transient Extension
// protocol used inside GetShortestPath, these permanently change the
// GeoGraph and bump its underlying Graph's version, invalidating any
// spantree cache entry keyed on the prior version.
package geograph

import (
	"github.com/makowski-graph/scgraph/haversine"
	"github.com/makowski-graph/scgraph/sparsegraph"
)

// ModAddNode appends a node at (lat, lon) with no incident arcs and
// returns its id.
func (gg *GeoGraph) ModAddNode(lat, lon float64) (int, error) {
	c := haversine.Coordinate{Lat: lat, Lon: lon}
	if err := validateCoordinate(c); err != nil {
		return 0, err
	}

	gg.queryMu.Lock()
	defer gg.queryMu.Unlock()

	id := gg.graph.ModAddNode()
	gg.coords = append(gg.coords, c)

	return id, nil
}

// ModAddArc inserts a symmetric arc (i, j). If weight is nil, it is
// computed as the haversine distance in kilometers between the two
// nodes' coordinates. overwrite controls whether an existing arc may be
// replaced: an error unless overwrite is true.
func (gg *GeoGraph) ModAddArc(i, j int, weight *float64, overwrite bool) error {
	gg.queryMu.Lock()
	defer gg.queryMu.Unlock()

	w := 0.0
	if weight != nil {
		w = *weight
	} else {
		if i < 0 || i >= len(gg.coords) || j < 0 || j >= len(gg.coords) {
			return sparsegraph.ErrInvalidNode
		}
		w = haversine.Distance(gg.coords[i], gg.coords[j], haversine.Kilometers)
	}

	return gg.graph.ModAddArc(i, j, w, overwrite)
}

// ModRemoveArc deletes the symmetric arc (i, j).
func (gg *GeoGraph) ModRemoveArc(i, j int) error {
	gg.queryMu.Lock()
	defer gg.queryMu.Unlock()

	return gg.graph.ModRemoveArc(i, j)
}

// ModRemoveNode removes node id and renumbers every later node down by
// one, keeping the coordinate table aligned with the adjacency table.
func (gg *GeoGraph) ModRemoveNode(id int) error {
	gg.queryMu.Lock()
	defer gg.queryMu.Unlock()

	if id < 0 || id >= len(gg.coords) {
		return sparsegraph.ErrInvalidNode
	}
	if err := gg.graph.ModRemoveNode(id); err != nil {
		return err
	}
	gg.coords = append(gg.coords[:id], gg.coords[id+1:]...)

	return nil
}
