package route

import (
	"github.com/katalvlaran/streetmap/core"
)

// TravelTime validates a caller-supplied node sequence and returns its
// total travel time in minutes.
//
// The sequence is checked in five ordered, short-circuiting passes, each
// reporting the first offending condition as a *PathError:
//
//  1. existence       — every identifier refers to a registered node
//  2. uniqueness      — no identifier appears more than once
//  3. co-membership   — each adjacent pair shares at least one way
//  4. direct adjacency — each adjacent pair is consecutive in some way
//  5. directionality  — each adjacent pair is a legal step (one-way ways
//     only in sequence order)
//
// Passes 3 and 4 report distinct reasons even though 4 subsumes 3; the
// finer diagnostics are part of the contract. Once validated, the travel
// time sums distance(u,v)/speed·60 over adjacent pairs, taking the first
// witnessing way in core.Steps order so the result is deterministic when
// several ways connect the same pair.
//
// Complexity: O(P²) for the uniqueness pass plus O(P · deg · L) for the
// adjacency passes, P being the path length.
func TravelTime(m *core.StreetMap, ids []int) (float64, error) {
	if m == nil {
		return 0, ErrNilMap
	}
	if len(ids) == 0 {
		return 0, ErrEmptyPath
	}

	// Pass 1: every identifier must refer to a registered node.
	for _, id := range ids {
		if !m.HasNode(id) {
			return 0, &PathError{Reason: ReasonMissingNode, From: id}
		}
	}

	// Pass 2: no identifier may appear more than once. The scan reports the
	// earliest position whose value recurs, so the offending node named is
	// stable regardless of where the repeat sits.
	for i := range ids {
		count := 0
		for j := range ids {
			if ids[j] == ids[i] {
				count++
			}
		}
		if count > 1 {
			return 0, &PathError{Reason: ReasonDuplicateNode, From: ids[i]}
		}
	}

	// Pass 3: each adjacent pair must share at least one way, regardless of
	// position within it.
	for i := 0; i+1 < len(ids); i++ {
		if !m.ShareWay(ids[i], ids[i+1]) {
			return 0, &PathError{Reason: ReasonNoRoad, From: ids[i], To: ids[i+1]}
		}
	}

	// Pass 4: each adjacent pair must be consecutive in some shared way,
	// in either order.
	for i := 0; i+1 < len(ids); i++ {
		if !m.Adjacent(ids[i], ids[i+1]) {
			return 0, &PathError{Reason: ReasonNotDirect, From: ids[i], To: ids[i+1]}
		}
	}

	// Pass 5: each adjacent pair must be a legal step; a one-way way only
	// permits movement in sequence order.
	for i := 0; i+1 < len(ids); i++ {
		if !m.Connected(ids[i], ids[i+1]) {
			return 0, &PathError{Reason: ReasonWrongDirection, From: ids[i], To: ids[i+1]}
		}
	}

	// All passes hold; sum the per-hop travel times.
	var total float64
	for i := 0; i+1 < len(ids); i++ {
		u, v := ids[i], ids[i+1]
		w := m.Steps(u, v)[0].Way
		total += m.Distance(u, v) / w.MaxSpeed * 60
	}

	return total, nil
}
