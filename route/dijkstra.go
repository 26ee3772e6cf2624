package route

import (
	"math"

	"github.com/katalvlaran/streetmap/core"
)

// ShortestPath computes the fastest path from start to end using Dijkstra's
// algorithm over the map's nodes. Edge cost between directly-connected
// neighbors is distance(u,v)/speed·60 minutes; when several ways witness
// the same hop the cheapest relaxation wins, and hops generated from
// one-way ways are directional.
//
// Returns the node sequence from start to end, its total cost in minutes,
// and an error. Disconnection is a valid result, not an error: the path is
// empty and the error nil. Missing or out-of-range endpoints return a
// *PathError with ReasonMissingNode. The degenerate start == end case
// yields the one-element sequence [start] at zero cost.
//
// Both sides consume the same step relation and the same distance model, so
// the returned path always validates, and its cost equals TravelTime of the
// path whenever each hop has a single witnessing way. Where several ways
// witness a hop, the router charges the fastest of them while TravelTime
// charges the first in core.Steps order, so the two costs can differ.
//
// Complexity: O((V + E) log V) time, O(V) transient space.
func ShortestPath(m *core.StreetMap, start, end int, opts ...Option) ([]int, float64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if m == nil {
		return nil, 0, ErrNilMap
	}
	if !m.HasNode(start) {
		return nil, 0, &PathError{Reason: ReasonMissingNode, From: start}
	}
	if !m.HasNode(end) {
		return nil, 0, &PathError{Reason: ReasonMissingNode, From: end}
	}
	if start == end {
		return []int{start}, 0, nil
	}

	r := newRunner(m, cfg)
	r.run(start, end)

	return r.reconstruct(start, end)
}

// runner holds the per-call state of one Dijkstra execution: tentative
// costs, settled flags, predecessors, and the priority queue. Everything is
// sized to the node count and released when the call returns.
type runner struct {
	m       *core.StreetMap
	options Options
	cost    []float64 // node → tentative cost in minutes
	settled []bool    // node → shortest cost finalized
	parent  []int     // node → predecessor on the best path, -1 for none
	heap    *minHeap
}

// newRunner allocates the working arrays: cost +Inf everywhere, no settled
// nodes, no predecessors.
func newRunner(m *core.StreetMap, cfg Options) *runner {
	n := m.NodeCount()
	cost := make([]float64, n)
	parent := make([]int, n)
	for i := 0; i < n; i++ {
		cost[i] = math.Inf(1)
		parent[i] = -1
	}

	return &runner{
		m:       m,
		options: cfg,
		cost:    cost,
		settled: make([]bool, n),
		parent:  parent,
		heap:    newMinHeap(n),
	}
}

// run seeds the queue with start at cost zero and settles nodes in order of
// increasing cost until the end is extracted, the queue drains, or the
// duration cap is reached.
func (r *runner) run(start, end int) {
	r.cost[start] = 0
	r.heap.push(start, 0)

	for r.heap.len() > 0 {
		u, d := r.heap.popMin()

		// Terminate as soon as the destination is extracted: its cost is
		// final and no cheaper path can appear later.
		if u == end {
			r.settled[u] = true
			break
		}

		// Beyond the cap nothing cheaper remains in the queue.
		if d > r.options.MaxDuration {
			break
		}

		r.settled[u] = true
		r.relax(u, d)
	}
}

// relax examines every legal hop out of u and improves the tentative cost
// of each unsettled neighbor, pushing it or lowering its key.
func (r *runner) relax(u int, d float64) {
	for _, hop := range r.m.Hops(u) {
		v := hop.To
		if r.settled[v] {
			continue
		}

		alt := d + r.m.Distance(u, v)/hop.Way.MaxSpeed*60
		if alt > r.options.MaxDuration {
			continue
		}
		if alt >= r.cost[v] {
			continue
		}

		r.cost[v] = alt
		r.parent[v] = u
		if r.heap.contains(v) {
			r.heap.decrease(v, alt)
		} else {
			r.heap.push(v, alt)
		}
	}
}

// reconstruct walks predecessors from end back to start and reverses the
// sequence. An end with no predecessor means no path exists.
func (r *runner) reconstruct(start, end int) ([]int, float64, error) {
	if r.parent[end] == -1 {
		return nil, 0, nil
	}

	var path []int
	for at := end; at != -1; at = r.parent[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, r.cost[end], nil
}
