// File: antimeridian.go
// Role: antimeridian-aware coordinate path assembly. The
// haversine distance itself is already correct across the dateline
// (sin²(Δlon/2) is periodic in Δlon), so this file only concerns the
// *display* representation of a path whose raw consecutive longitudes
// differ by more than 180°.
package geograph

import (
	"math"

	"github.com/makowski-graph/scgraph/haversine"
)

// buildSegments converts an ordered coordinate path into one or more
// segments per mode. AntimeridianInterpolate returns exactly one segment
// with a synthetic ±180° point inserted at each crossing.
// AntimeridianSplit returns one segment per dateline-free run: a
// segment ends at the boundary longitude on its own side (+180 or -180)
// and the next starts at the same latitude on the opposite side, so each
// segment stays internally continuous.
func buildSegments(points []haversine.Coordinate, mode AntimeridianMode) [][]haversine.Coordinate {
	if len(points) == 0 {
		return nil
	}

	segments := [][]haversine.Coordinate{{points[0]}}
	for i := 1; i < len(points); i++ {
		prev, next := points[i-1], points[i]
		if math.Abs(next.Lon-prev.Lon) <= 180 {
			cur := &segments[len(segments)-1]
			*cur = append(*cur, next)
			continue
		}

		boundary, t := crossingPoint(prev.Lon, next.Lon)
		crossLat := prev.Lat + t*(next.Lat-prev.Lat)
		crossPoint := haversine.Coordinate{Lat: crossLat, Lon: boundary}

		cur := &segments[len(segments)-1]
		*cur = append(*cur, crossPoint)

		if mode == AntimeridianSplit {
			// The next segment starts on the far side of the dateline.
			farSide := haversine.Coordinate{Lat: crossLat, Lon: -boundary}
			segments = append(segments, []haversine.Coordinate{farSide, next})
		} else {
			*cur = append(*cur, next)
		}
	}

	return segments
}

// crossingDelta returns the unwrapped longitude delta next-prev (adding
// or subtracting 360 as needed so the path travels the shorter way
// around), or 0 if the raw delta is already <= 180 in magnitude (no
// crossing).
func crossingDelta(prevLon, nextLon float64) float64 {
	raw := nextLon - prevLon
	switch {
	case raw > 180:
		return raw - 360
	case raw < -180:
		return raw + 360
	default:
		return 0
	}
}

// crossingPoint returns the dateline longitude the segment crosses
// (+180 or -180) and the interpolation fraction t in (0,1) along
// prevLon -> unwrapped nextLon at which the crossing occurs.
func crossingPoint(prevLon, nextLon float64) (boundary, t float64) {
	unwrappedNext := prevLon + crossingDelta(prevLon, nextLon)
	if unwrappedNext > prevLon {
		boundary = 180
	} else {
		boundary = -180
	}
	t = (boundary - prevLon) / (unwrappedNext - prevLon)

	return boundary, t
}
