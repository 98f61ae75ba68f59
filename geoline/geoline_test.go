package geoline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makowski-graph/scgraph/geograph"
	"github.com/makowski-graph/scgraph/geoline"
	"github.com/makowski-graph/scgraph/haversine"
)

func TestFromGeoPathResult_SingleSegment(t *testing.T) {
	result := geograph.GeoPathResult{
		Segments: [][]haversine.Coordinate{
			{{Lat: 10, Lon: 20}, {Lat: 11, Lon: 21}},
		},
	}

	lines := geoline.FromGeoPathResult(result)
	require.Len(t, lines, 1)
	assert.Equal(t, [2]float64{20, 10}, lines[0][0], "want [lon,lat]")
	assert.Equal(t, [2]float64{21, 11}, lines[0][1], "want [lon,lat]")
}

func TestFromGeoPathResult_MultipleSegments(t *testing.T) {
	result := geograph.GeoPathResult{
		Segments: [][]haversine.Coordinate{
			{{Lat: 0, Lon: 179}, {Lat: 0, Lon: 180}},
			{{Lat: 0, Lon: -180}, {Lat: 0, Lon: -179}},
		},
	}

	lines := geoline.FromGeoPathResult(result)
	assert.Len(t, lines, 2)
}

func TestFeatureCollectionFromGeoPathResult(t *testing.T) {
	result := geograph.GeoPathResult{
		Segments: [][]haversine.Coordinate{
			{{Lat: 10, Lon: 20}, {Lat: 11, Lon: 21}},
		},
		Length: 123.4,
	}

	fc := geoline.FeatureCollectionFromGeoPathResult(result, map[string]interface{}{"length": result.Length})
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, "Feature", f.Type)
	assert.Equal(t, "LineString", f.Geometry.Type)
	assert.Equal(t, 123.4, f.Properties["length"])
}
