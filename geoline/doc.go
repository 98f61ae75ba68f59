// Package geoline converts a solved geograph.GeoPathResult into
// line-geometry records suitable for downstream serialization: one
// LineString per antimeridian-split segment, and a standard GeoJSON
// FeatureCollection/LineString wrapper.
//
// geoline builds records, not encoders: serialization is left entirely
// to the caller's own encoding/json use.
package geoline
