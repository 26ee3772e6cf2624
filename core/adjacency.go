// File: adjacency.go
// Role: The direct-step relation and its consumers-facing views.
// Determinism:
//   - Steps(u, v) enumerates witnesses in u's way-list order; within a way,
//     the first adjacent occurrence in sequence order decides the direction.
//   - Hops(u) enumerates u's ways in way-list order, occurrences in sequence
//     order, predecessor neighbor before successor neighbor.

package core

// Step is one legal direct hop between two adjacent nodes of a way.
// Reverse reports that the hop walks the way's sequence backwards, which is
// only legal on two-way ways.
type Step struct {
	Way     *Way
	Reverse bool
}

// Hop is one legal outgoing move from a node: the neighbor reached and the
// way traversed. The travel cost of a hop is derived by the routing layer
// from the node distance and Way.MaxSpeed.
type Hop struct {
	To  int
	Way *Way
}

// contains reports whether id appears anywhere in the way's polyline.
func (w *Way) contains(id int) bool {
	for _, nid := range w.nodeIDs {
		if nid == id {
			return true
		}
	}

	return false
}

// adjacent reports whether u and v occupy consecutive positions in the
// way's polyline, in either order and regardless of directionality.
func (w *Way) adjacent(u, v int) bool {
	for i := 0; i+1 < len(w.nodeIDs); i++ {
		if (w.nodeIDs[i] == u && w.nodeIDs[i+1] == v) ||
			(w.nodeIDs[i] == v && w.nodeIDs[i+1] == u) {
			return true
		}
	}

	return false
}

// step reports whether moving u→v along this way is legal: u and v must be
// consecutive in the polyline, and a one-way way additionally requires the
// order u then v. reverse is true when the legal hop walks backwards.
func (w *Way) step(u, v int) (reverse, ok bool) {
	for i := 0; i+1 < len(w.nodeIDs); i++ {
		if w.nodeIDs[i] == u && w.nodeIDs[i+1] == v {
			return false, true
		}
		if !w.OneWay && w.nodeIDs[i] == v && w.nodeIDs[i+1] == u {
			return true, true
		}
	}

	return false, false
}

// ShareWay reports whether some way contains both u and v anywhere in its
// polyline, regardless of position. Unregistered identifiers share nothing.
//
// Complexity: O(deg(u) · L) with L the longest shared polyline.
func (m *StreetMap) ShareWay(u, v int) bool {
	if !m.HasNode(u) || !m.HasNode(v) {
		return false
	}
	for _, wid := range m.nodes[u].wayIDs {
		if m.ways[wid].contains(v) {
			return true
		}
	}

	return false
}

// Adjacent reports whether u and v occupy consecutive positions in some
// shared way, ignoring directionality. Unregistered identifiers are never
// adjacent.
func (m *StreetMap) Adjacent(u, v int) bool {
	if !m.HasNode(u) || !m.HasNode(v) {
		return false
	}
	for _, wid := range m.nodes[u].wayIDs {
		if m.ways[wid].adjacent(u, v) {
			return true
		}
	}

	return false
}

// Steps enumerates every way along which u→v is a legal direct hop,
// together with the direction used. The order is deterministic: u's
// way-list order, first adjacent occurrence within each way.
//
// Multiple witnesses are permitted; the validator picks the first and the
// router evaluates each independently.
func (m *StreetMap) Steps(u, v int) []Step {
	if !m.HasNode(u) || !m.HasNode(v) {
		return nil
	}

	var out []Step
	for _, wid := range m.nodes[u].wayIDs {
		w := m.ways[wid]
		if reverse, ok := w.step(u, v); ok {
			out = append(out, Step{Way: w, Reverse: reverse})
		}
	}

	return out
}

// Connected reports whether at least one way permits the direct hop u→v.
func (m *StreetMap) Connected(u, v int) bool {
	if !m.HasNode(u) || !m.HasNode(v) {
		return false
	}
	for _, wid := range m.nodes[u].wayIDs {
		w := m.ways[wid]
		if _, ok := w.step(u, v); ok {
			return true
		}
	}

	return false
}

// Hops enumerates every legal outgoing hop from u: for each way the node
// belongs to and each occurrence of u in that way's polyline, the neighbor
// one position back (skipped on one-way ways) and one position forward.
//
// A node pair connected by several ways yields one hop per way; the router
// relaxes each independently so the fastest way wins.
func (m *StreetMap) Hops(u int) []Hop {
	if !m.HasNode(u) {
		return nil
	}

	var out []Hop
	for _, wid := range m.nodes[u].wayIDs {
		w := m.ways[wid]
		for i, nid := range w.nodeIDs {
			if nid != u {
				continue
			}
			if i > 0 && !w.OneWay {
				out = append(out, Hop{To: w.nodeIDs[i-1], Way: w})
			}
			if i+1 < len(w.nodeIDs) {
				out = append(out, Hop{To: w.nodeIDs[i+1], Way: w})
			}
		}
	}

	return out
}
