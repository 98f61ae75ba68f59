// Package haversine computes great-circle distance between two
// (latitude, longitude) points on a sphere of Earth's mean radius.
//
// The formula and its unit handling are hand-rolled rather than pulled
// from a third-party geodesy package: every geographic shortest-path
// example in the reference corpus (0dayfall/geo, reeshijoshi/go-distance,
// passbi_core/internal/routing) does the same — a haversine implementation
// sits directly next to the Dijkstra/A* solver it feeds, using only
// math.Sin/Cos/Atan2/Sqrt.
package haversine
