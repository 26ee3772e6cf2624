// Package core defines the central StreetMap, Node, and Way types and the
// direct-step adjacency relation that routing and validation share.
//
// What
//
//   - Node:  a geographic location (dense integer ID, lat/lon in decimal
//     degrees) plus the IDs of the ways it belongs to.
//   - Way:   a named road segment (dense integer ID, max speed in km/h,
//     one-way flag) described by an ordered node-ID polyline of length ≥ 2.
//   - StreetMap: the immutable bundle of all nodes and ways, indexed by ID
//     with O(1) lookup. Created once, populated once via AddWay/AddNode,
//     queried many times, never mutated afterwards.
//   - Adjacency: Steps, Connected, Hops, Adjacent and ShareWay — the single
//     implementation of "can one step directly from u to v, along which way,
//     in which direction".
//
// Why
//
//	A way induces graph edges only between consecutive entries of its node
//	sequence, and one-way ways permit movement only in sequence order. Both
//	the path validator and the router must agree on this relation exactly,
//	or a routed path would be rejected by its own validator. Keeping the
//	relation here, behind one implementation, makes that agreement
//	structural rather than accidental.
//
// Ownership
//
//	The map owns its nodes and ways for its whole lifetime. Nodes and ways
//	reference each other by identifier only and are resolved against the
//	map's flat arrays; there are no pointer cycles to manage.
//
// Concurrency
//
//	Registration is not synchronized: populate the map from a single
//	goroutine, then share it freely. Once populated, every method is a pure
//	read and any number of goroutines may query the same map concurrently.
//
// Determinism
//
//   - Steps(u, v) enumerates witnesses in u's way-list order, then the
//     way's sequence order.
//   - Hops(u) enumerates hops in u's way-list order, then occurrence order,
//     predecessor neighbor before successor neighbor.
package core
