// File: types.go
// Role: the GeoGraph struct and the query/mutator option types used
// across this package.
package geograph

import (
	"sync"

	"github.com/makowski-graph/scgraph/haversine"
	"github.com/makowski-graph/scgraph/spantree"
	"github.com/makowski-graph/scgraph/sparsegraph"
)

// GeoGraph pairs a sparsegraph.Graph with a parallel coordinate table
// (the node table). queryMu serializes GetShortestPath calls: the
// endpoint-snapping protocol mutates shared adjacency for the duration
// of one solve, and two queries in flight would corrupt each other.
type GeoGraph struct {
	queryMu sync.Mutex

	graph  *sparsegraph.Graph
	coords []haversine.Coordinate
	cache  *spantree.Cache
}

// Algorithm names a solver strategy. Algorithms are dispatched by name,
// not by method reference, so cache keys and serialized configuration
// stay stable across process restarts.
type Algorithm string

// Supported algorithms.
const (
	AlgorithmDijkstraMakowski Algorithm = "dijkstra_makowski"
	AlgorithmAStar            Algorithm = "a_star"
)

// NodeAdditionType selects the candidate-search strategy used to graft a
// synthetic endpoint onto the network.
type NodeAdditionType string

// Supported node-addition strategies.
const (
	NodeAdditionQuadrant NodeAdditionType = "quadrant"
	NodeAdditionClosest  NodeAdditionType = "closest"
	NodeAdditionAll      NodeAdditionType = "all"
)

// CacheFor selects which endpoint's spanning tree is cached.
type CacheFor string

// Supported cache-key endpoints.
const (
	CacheForOrigin      CacheFor = "origin"
	CacheForDestination CacheFor = "destination"
)

// OutputCoordinateFormat records the coordinate-path shape a query
// asked for, in GeoPathResult.Format. Both shapes carry identical data,
// read from GeoPathResult via CoordinateDicts or CoordinateLists; the
// format only affects how a caller downstream (e.g. a JSON encoder)
// would see it.
type OutputCoordinateFormat int

// Supported coordinate-path output shapes.
const (
	// FormatListOfDicts names the []CoordinateDict shape
	// (GeoPathResult.CoordinateDicts), i.e. {"latitude": ...,
	// "longitude": ...} per point.
	FormatListOfDicts OutputCoordinateFormat = iota
	// FormatListOfLists names the [][2]float64 shape
	// (GeoPathResult.CoordinateLists), i.e. [lat, lon] per point.
	FormatListOfLists
)

// AntimeridianMode selects how a path segment crossing ±180° longitude
// is represented in the output coordinate path.
type AntimeridianMode int

// Supported antimeridian-crossing output modes.
const (
	// AntimeridianInterpolate inserts an intermediate point at ±180°
	// where a segment crosses the dateline (the default).
	AntimeridianInterpolate AntimeridianMode = iota
	// AntimeridianSplit instead returns multiple disjoint segments.
	AntimeridianSplit
)

// CoordinateDict is the {"latitude","longitude"} shape used by
// FormatListOfDicts.
type CoordinateDict struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoPathResult is the outcome of GetShortestPath.
// Segments holds the coordinate path; Format records the requested
// OutputCoordinateFormat, and CoordinateDicts / CoordinateLists flatten
// Segments into either shape. When AntimeridianMode is AntimeridianSplit
// and the path crosses the dateline, Segments holds one segment per
// dateline-free run instead of a single continuous path.
type GeoPathResult struct {
	Format     OutputCoordinateFormat
	Segments   [][]haversine.Coordinate // always populated; len==1 unless split
	Length     float64                  // in the requested output unit
	Path       []int                    // nil unless WithOutputPath() was set
}

// queryOptions is the resolved configuration for one GetShortestPath
// call.
type queryOptions struct {
	outputUnits            haversine.Unit
	algorithm               Algorithm
	nodeAdditionType       NodeAdditionType
	nodeAdditionCircuity   float64
	outputCoordinateFormat OutputCoordinateFormat
	outputPath             bool
	cache                  bool
	cacheFor               CacheFor
	antimeridianMode       AntimeridianMode
}

func defaultQueryOptions() queryOptions {
	return queryOptions{
		outputUnits:            haversine.Kilometers,
		algorithm:               AlgorithmDijkstraMakowski,
		nodeAdditionType:       NodeAdditionQuadrant,
		nodeAdditionCircuity:   4,
		outputCoordinateFormat: FormatListOfDicts,
		outputPath:             false,
		cache:                  false,
		cacheFor:               CacheForOrigin,
		antimeridianMode:       AntimeridianInterpolate,
	}
}

// QueryOption configures a single GetShortestPath call.
type QueryOption func(*queryOptions)

// WithOutputUnits sets the unit length reports and length are converted
// to. Default: haversine.Kilometers.
func WithOutputUnits(u haversine.Unit) QueryOption {
	return func(o *queryOptions) { o.outputUnits = u }
}

// WithAlgorithm selects the solver strategy. Default:
// AlgorithmDijkstraMakowski.
func WithAlgorithm(a Algorithm) QueryOption {
	return func(o *queryOptions) { o.algorithm = a }
}

// WithNodeAdditionType selects the endpoint candidate-search strategy.
// Default: NodeAdditionQuadrant.
func WithNodeAdditionType(t NodeAdditionType) QueryOption {
	return func(o *queryOptions) { o.nodeAdditionType = t }
}

// WithNodeAdditionCircuity overrides the synthetic-edge circuity
// multiplier applied to the straight-line distance between an endpoint
// and its candidate graft nodes. Default: 4.
func WithNodeAdditionCircuity(c float64) QueryOption {
	return func(o *queryOptions) { o.nodeAdditionCircuity = c }
}

// WithOutputCoordinateFormat sets GeoPathResult.Format. Default:
// FormatListOfDicts.
func WithOutputCoordinateFormat(f OutputCoordinateFormat) QueryOption {
	return func(o *queryOptions) { o.outputCoordinateFormat = f }
}

// WithOutputPath additionally populates GeoPathResult.Path with the raw
// index path (purely informational). Default: false.
func WithOutputPath() QueryOption {
	return func(o *queryOptions) { o.outputPath = true }
}

// WithCache enables the spanning-tree cache for this query.
// Default: false.
func WithCache() QueryOption {
	return func(o *queryOptions) { o.cache = true }
}

// WithCacheFor selects which endpoint's spanning tree is cached when
// WithCache is set. Default: CacheForOrigin.
func WithCacheFor(c CacheFor) QueryOption {
	return func(o *queryOptions) { o.cacheFor = c }
}

// WithAntimeridianSplit requests that a dateline-crossing path be
// returned as multiple segments instead of interpolated through ±180°.
func WithAntimeridianSplit() QueryOption {
	return func(o *queryOptions) { o.antimeridianMode = AntimeridianSplit }
}
