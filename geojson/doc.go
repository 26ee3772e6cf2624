// Package geojson renders street-map entities as GeoJSON features:
// a validated route, a single way, or the whole network.
//
// Coordinates follow the GeoJSON convention of [longitude, latitude].
// Route features carry "travel_time_min" and "nodes" properties; way
// features carry "name", "max_speed" and "one_way". The resulting values
// marshal with any JSON encoder.
package geojson
