// File: snapping.go
// Role: candidate search for grafting a synthetic endpoint onto the
// existing network.
package geograph

import "github.com/makowski-graph/scgraph/haversine"

// candidateNodes returns the existing node ids eligible to receive a
// synthetic edge from endpoint, per the requested NodeAdditionType.
// existingN bounds the search to nodes present before any synthetic
// extension for this query (so a query never snaps onto another
// query's synthetic node).
func candidateNodes(coords []haversine.Coordinate, existingN int, endpoint haversine.Coordinate, t NodeAdditionType) ([]int, error) {
	if existingN == 0 {
		return nil, ErrNoCandidates
	}

	switch t {
	case NodeAdditionClosest:
		return []int{nearestNode(coords, existingN, endpoint)}, nil
	case NodeAdditionAll:
		all := make([]int, existingN)
		for i := range all {
			all[i] = i
		}
		return all, nil
	case NodeAdditionQuadrant:
		return quadrantCandidates(coords, existingN, endpoint), nil
	default:
		return nil, ErrUnknownNodeAdditionType
	}
}

// nearestNode returns the id of the single closest node to endpoint
// among coords[0:existingN].
func nearestNode(coords []haversine.Coordinate, existingN int, endpoint haversine.Coordinate) int {
	best, bestDist := -1, 0.0
	for i := 0; i < existingN; i++ {
		d := haversine.Distance(endpoint, coords[i], haversine.Kilometers)
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

// quadrantCandidates returns, for each of the four lat/lon quadrants
// relative to endpoint, the id of the nearest node in that quadrant (if
// any), antimeridian-aware via haversine.WrappedLonSignedDelta.
func quadrantCandidates(coords []haversine.Coordinate, existingN int, endpoint haversine.Coordinate) []int {
	type best struct {
		id   int
		dist float64
	}
	var quadrants [4]best
	for i := range quadrants {
		quadrants[i].id = -1
	}

	for i := 0; i < existingN; i++ {
		dLat := coords[i].Lat - endpoint.Lat
		dLon := haversine.WrappedLonSignedDelta(endpoint.Lon, coords[i].Lon)
		q := quadrantIndex(dLat, dLon)
		d := haversine.Distance(endpoint, coords[i], haversine.Kilometers)
		if quadrants[q].id == -1 || d < quadrants[q].dist {
			quadrants[q] = best{id: i, dist: d}
		}
	}

	out := make([]int, 0, 4)
	for _, b := range quadrants {
		if b.id != -1 {
			out = append(out, b.id)
		}
	}

	return out
}

// quadrantIndex buckets (dLat, dLon) into one of NE/NW/SE/SW.
func quadrantIndex(dLat, dLon float64) int {
	switch {
	case dLat >= 0 && dLon >= 0:
		return 0 // NE
	case dLat >= 0 && dLon < 0:
		return 1 // NW
	case dLat < 0 && dLon >= 0:
		return 2 // SE
	default:
		return 3 // SW
	}
}
