// Package geo provides great-circle distance between geographic
// coordinates, the single distance model used by the street-map engine.
//
// What
//
//   - Distance(lat1, lon1, lat2, lon2) — haversine distance in kilometers
//     on a sphere of radius EarthRadiusKm (6371.0 km).
//   - Inputs are decimal degrees; conversion to radians is internal.
//
// Why
//
//   - Travel time along a way is distance divided by the way's speed limit;
//     every routing and validation cost in this module reduces to Distance.
//
// Determinism
//
//	Distance(x, y) == Distance(y, x), and Distance(x, x) == 0 exactly:
//	identical inputs produce zero deltas before any floating-point rounding
//	can occur.
//
// Complexity
//
//   - Time:  O(1) — a fixed handful of trigonometric operations.
//   - Space: O(1).
//
// There are no error conditions.
package geo
