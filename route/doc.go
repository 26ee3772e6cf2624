// Package route implements time-weighted routing over a core.StreetMap:
// a path validator, a Dijkstra shortest-time router, and the capacity-fixed
// min-heap that drives the search.
//
// What
//
//   - TravelTime(m, ids): validate a caller-supplied node sequence in five
//     ordered passes (existence, uniqueness, co-membership, direct
//     adjacency, directionality) and compute its travel time in minutes.
//   - ShortestPath(m, start, end, opts...): Dijkstra's algorithm over the
//     node set with edge cost distance/speed·60 minutes, honoring one-way
//     directionality, reconstructing the node sequence from predecessors.
//   - A binary min-heap of (node, cost) pairs with an identifier→slot
//     position index for O(log n) decrease-key, sized once to the map's
//     node count.
//
// Why
//
//	Validation and routing reason about the same primitive — "can one step
//	directly from u to v, along which way, at what speed" — and must agree
//	exactly, or a routed path would be rejected by its own validator. Both
//	therefore consume the single step relation exposed by core (Steps,
//	Connected, Hops) and derive costs from the same distance and speed.
//
// Failure semantics
//
//	User errors (missing node, malformed path) surface as *PathError with a
//	machine-readable Reason; callers that own an output format render the
//	message themselves. Disconnection is not an error: ShortestPath returns
//	an empty path and a nil error. Programmer errors (heap misuse) panic.
//
// Complexity (V = nodes, E = polyline adjacencies)
//
//   - TravelTime:    O(P² + P · W · L) for a P-node path whose nodes belong
//     to at most W ways of length at most L.
//   - ShortestPath:  O((V + E) log V) time, O(V) transient space — the
//     cost, settled and predecessor arrays plus the heap, all released
//     when the call returns.
//
// Concurrency
//
//	Stateless: every call allocates its own working memory, so any number
//	of goroutines may route over the same immutable map concurrently.
package route
