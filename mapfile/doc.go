// Package mapfile reads and writes JSON street-map documents and builds
// immutable core.StreetMap instances from them.
//
// Document format
//
//	{
//	  "nodes": [{"id": 0, "lat": 43.66, "lon": -79.39, "way_ids": [0, 2]}],
//	  "ways":  [{"id": 0, "name": "Main", "max_speed": 60,
//	             "one_way": false, "node_ids": [0, 1, 2]}]
//	}
//
// Identifiers are dense from zero in both arrays. "max_speed" is required
// and strictly positive; "one_way" is optional and defaults to two-way.
// Optional fields are pointer-typed in the document structs so absence is
// distinguishable from a zero value.
//
// Build registers all ways, then all nodes, then verifies the
// cross-reference invariants in both directions: every way listed by a
// node contains that node, and every node listed by a way lists that way
// back. A document that builds successfully therefore yields a map on
// which the adjacency relation is total.
package mapfile
