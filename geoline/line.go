// File: line.go
// Role: flatten a solved GeoPathResult into one or more LineStrings.
package geoline

import "github.com/makowski-graph/scgraph/geograph"

// LineString is a single continuous multi-point line in GeoJSON
// coordinate order: each point is [longitude, latitude].
type LineString [][2]float64

// FromGeoPathResult converts result into one LineString per segment.
// GeoPathResult already carries its segments split (or interpolated)
// across the antimeridian per the AntimeridianMode the query requested;
// geoline only reshapes that data into line-geometry order, it does not
// re-derive the split.
func FromGeoPathResult(result geograph.GeoPathResult) []LineString {
	lines := make([]LineString, len(result.Segments))
	for i, seg := range result.Segments {
		line := make(LineString, len(seg))
		for j, c := range seg {
			line[j] = [2]float64{c.Lon, c.Lat}
		}
		lines[i] = line
	}

	return lines
}
