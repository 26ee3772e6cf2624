// Package streetmap is an in-memory street-map query engine.
//
// It ingests a static road network — points in geographic space and named
// road segments connecting them — and answers four kinds of queries:
// lookup-and-print by identifier, substring search by name, validated
// travel-time computation along a caller-supplied point sequence, and
// shortest-time routing between two points.
//
// Everything is organized in small, focused packages:
//
//	geo/      — great-circle (haversine) distance
//	core/     — immutable StreetMap, Node, Way + the direct-step relation
//	route/    — path validation, travel time, Dijkstra shortest-time router
//	query/    — line-oriented query façade over one map
//	mapfile/  — JSON map documents: decode, validate, build a StreetMap
//	geojson/  — GeoJSON export of routes, ways and whole networks
//	server/   — HTTP query API (fasthttp) with YAML configuration
//	cmd/      — the streetmap command: interactive loop or server mode
//
// The engine is read-only after construction: build a map once via
// mapfile, then query it from any number of goroutines. Adjacency is
// defined by consecutive positions inside a way's polyline — not mere
// co-membership — and one-way ways restrict movement to sequence order;
// the validator and the router share the single implementation of that
// rule in core, so a routed path always validates.
package streetmap
