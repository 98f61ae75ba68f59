// File: query.go
// Role: GetShortestPath — the single entry point tying together
// endpoint snapping, the scoped insert/solve/rollback guard, solver
// dispatch, the spanning-tree cache, and output formatting.
package geograph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/makowski-graph/scgraph/haversine"
	"github.com/makowski-graph/scgraph/pathfind"
	"github.com/makowski-graph/scgraph/spantree"
)

// GetShortestPath grafts origin and destination onto the network as
// synthetic nodes, solves for the shortest path between them, and tears
// the synthetic nodes back down before returning — regardless of
// whether the solve succeeded. Concurrent calls on the same GeoGraph
// are serialized; each call observes (and leaves behind) the graph
// exactly as it found it.
func (gg *GeoGraph) GetShortestPath(origin, destination haversine.Coordinate, opts ...QueryOption) (GeoPathResult, error) {
	if err := validateCoordinate(origin); err != nil {
		return GeoPathResult{}, fmt.Errorf("origin: %w", err)
	}
	if err := validateCoordinate(destination); err != nil {
		return GeoPathResult{}, fmt.Errorf("destination: %w", err)
	}

	cfg := defaultQueryOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.algorithm {
	case AlgorithmDijkstraMakowski, AlgorithmAStar:
	default:
		return GeoPathResult{}, ErrUnknownAlgorithm
	}

	gg.queryMu.Lock()
	defer gg.queryMu.Unlock()

	existingN := gg.graph.N()
	originCandidates, err := candidateNodes(gg.coords, existingN, origin, cfg.nodeAdditionType)
	if err != nil {
		return GeoPathResult{}, err
	}
	destCandidates, err := candidateNodes(gg.coords, existingN, destination, cfg.nodeAdditionType)
	if err != nil {
		return GeoPathResult{}, err
	}

	origCoordsLen := len(gg.coords)
	defer func() { gg.coords = gg.coords[:origCoordsLen] }()

	ext := gg.graph.BeginExtension()
	defer ext.Undo()

	synthOrigin := ext.AddNode()
	gg.coords = append(gg.coords, origin)
	for _, c := range originCandidates {
		w := haversine.Distance(origin, gg.coords[c], haversine.Kilometers) * cfg.nodeAdditionCircuity
		if err := ext.AddArc(synthOrigin, c, w); err != nil {
			return GeoPathResult{}, err
		}
	}

	synthDest := ext.AddNode()
	gg.coords = append(gg.coords, destination)
	for _, c := range destCandidates {
		w := haversine.Distance(destination, gg.coords[c], haversine.Kilometers) * cfg.nodeAdditionCircuity
		if err := ext.AddArc(synthDest, c, w); err != nil {
			return GeoPathResult{}, err
		}
	}

	result, err := gg.solve(cfg, synthOrigin, synthDest, destination)
	if err != nil {
		return GeoPathResult{}, err
	}

	return gg.formatResult(cfg, result)
}

// CoordinateDicts flattens Segments into the {"latitude","longitude"}
// shape used by FormatListOfDicts. Callers using FormatListOfLists
// should use CoordinateLists instead.
func (r GeoPathResult) CoordinateDicts() []CoordinateDict {
	var out []CoordinateDict
	for _, seg := range r.Segments {
		for _, c := range seg {
			out = append(out, CoordinateDict{Latitude: c.Lat, Longitude: c.Lon})
		}
	}

	return out
}

// CoordinateLists flattens Segments into [lat, lon] pairs, the shape
// used by FormatListOfLists.
func (r GeoPathResult) CoordinateLists() [][2]float64 {
	var out [][2]float64
	for _, seg := range r.Segments {
		for _, c := range seg {
			out = append(out, [2]float64{c.Lat, c.Lon})
		}
	}

	return out
}

// solve dispatches to the cached spanning-tree path or a direct
// point-to-point solve, per cfg.
func (gg *GeoGraph) solve(cfg queryOptions, synthOrigin, synthDest int, destination haversine.Coordinate) (pathfind.PathResult, error) {
	if !cfg.cache {
		if cfg.algorithm == AlgorithmAStar {
			h := func(node int) float64 {
				return haversine.Distance(gg.coords[node], destination, haversine.Kilometers)
			}
			return pathfind.AStar(gg.graph, synthOrigin, synthDest, h)
		}
		return pathfind.DijkstraMakowski(gg.graph, synthOrigin, synthDest)
	}

	root, target := synthOrigin, synthDest
	if cfg.cacheFor == CacheForDestination {
		root, target = synthDest, synthOrigin
	}

	neighbors, err := gg.graph.Neighbors(root)
	if err != nil {
		return pathfind.PathResult{}, err
	}

	key := spantree.Key{
		Version:   gg.graph.Version(),
		Algorithm: string(cfg.algorithm),
		Root:      root,
		Neighbors: neighborSignature(neighbors),
	}
	tree, err := gg.cache.GetOrCompute(key, func() (pathfind.SpanningTreeResult, error) {
		return pathfind.SpanningTree(gg.graph, root)
	})
	if err != nil {
		return pathfind.PathResult{}, err
	}

	result, err := pathfind.PathFromTree(tree, target)
	if err != nil {
		return pathfind.PathResult{}, err
	}
	if cfg.cacheFor == CacheForDestination {
		result.Path = reversePath(result.Path)
	}

	return result, nil
}

// neighborSignature encodes a root's neighbor set as a deterministic
// string so it can serve as a spantree.Key field: the same (id, weight)
// pairs in the same sorted order always produce the same signature,
// regardless of map iteration order.
func neighborSignature(neighbors map[int]float64) string {
	ids := make([]int, 0, len(neighbors))
	for id := range neighbors {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d:%g;", id, neighbors[id])
	}

	return b.String()
}

func reversePath(path []int) []int {
	out := make([]int, len(path))
	for i, n := range path {
		out[len(path)-1-i] = n
	}

	return out
}

// formatResult translates a node-index path into the requested
// GeoPathResult shape.
func (gg *GeoGraph) formatResult(cfg queryOptions, result pathfind.PathResult) (GeoPathResult, error) {
	points := make([]haversine.Coordinate, len(result.Path))
	for i, id := range result.Path {
		points[i] = gg.coords[id]
	}

	length, err := haversine.ConvertKM(result.Length, cfg.outputUnits)
	if err != nil {
		return GeoPathResult{}, err
	}

	out := GeoPathResult{
		Format:   cfg.outputCoordinateFormat,
		Segments: buildSegments(points, cfg.antimeridianMode),
		Length:   length,
	}
	if cfg.outputPath {
		out.Path = result.Path
	}

	return out, nil
}
