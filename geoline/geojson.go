// File: geojson.go
// Role: standard FeatureCollection/LineString records, one feature per
// antimeridian-split segment.
package geoline

import "github.com/makowski-graph/scgraph/geograph"

// Geometry is a GeoJSON LineString geometry object.
type Geometry struct {
	Type        string     `json:"type"`
	Coordinates LineString `json:"coordinates"`
}

// Feature is a GeoJSON Feature wrapping a Geometry.
type Feature struct {
	Type       string                 `json:"type"`
	Geometry   Geometry               `json:"geometry"`
	Properties map[string]interface{} `json:"properties,omitempty"`
}

// FeatureCollection is a GeoJSON FeatureCollection of LineString
// features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// FeatureCollectionFromGeoPathResult builds a FeatureCollection from a
// solved GeoPathResult, one LineString Feature per segment. properties
// is attached verbatim to every feature; pass nil for none.
func FeatureCollectionFromGeoPathResult(result geograph.GeoPathResult, properties map[string]interface{}) FeatureCollection {
	lines := FromGeoPathResult(result)
	features := make([]Feature, len(lines))
	for i, line := range lines {
		features[i] = Feature{
			Type:       "Feature",
			Geometry:   Geometry{Type: "LineString", Coordinates: line},
			Properties: properties,
		}
	}

	return FeatureCollection{Type: "FeatureCollection", Features: features}
}
