package query

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/route"
)

// TravelTimeFailure is the sentinel value returned by TravelTime when the
// supplied sequence does not validate.
const TravelTimeFailure = -1.0

// Query dispatches map operations against one immutable street map and
// writes line-oriented results to one destination.
type Query struct {
	m *core.StreetMap
	w io.Writer
}

// New binds a query surface to the given map and writer.
func New(m *core.StreetMap, w io.Writer) *Query {
	return &Query{m: m, w: w}
}

// PrintNode writes "Node <id>: (<lat>, <lon>)" with coordinates to seven
// decimal places, or the node error line when the identifier is unknown.
func (q *Query) PrintNode(id int) {
	n, err := q.m.Node(id)
	if err != nil {
		fmt.Fprintf(q.w, "error: node %d does not exist\n", id)

		return
	}
	fmt.Fprintf(q.w, "Node %d: (%.7f, %.7f)\n", id, n.Lat, n.Lon)
}

// PrintWay writes "Way <id>: <name>", or the way error line when the
// identifier is unknown.
func (q *Query) PrintWay(id int) {
	w, err := q.m.Way(id)
	if err != nil {
		fmt.Fprintf(q.w, "error: way %d does not exist\n", id)

		return
	}
	fmt.Fprintf(q.w, "Way %d: %s\n", id, w.Name)
}

// FindWaysByName writes the identifier of every way whose display name
// contains the substring (case-sensitive), "<id> " per match, then a
// newline. An empty result is just the newline.
func (q *Query) FindWaysByName(sub string) {
	for id := 0; id < q.m.WayCount(); id++ {
		w, err := q.m.Way(id)
		if err != nil {
			continue
		}
		if strings.Contains(w.Name, sub) {
			fmt.Fprintf(q.w, "%d ", id)
		}
	}
	fmt.Fprintln(q.w)
}

// FindNodesByNames writes the identifier of every node that touches at
// least one way whose name contains sub1 and, when sub2 is non-empty, at
// least one *different* way whose name contains sub2. "<id> " per match,
// then a newline.
func (q *Query) FindNodesByNames(sub1, sub2 string) {
	for id := 0; id < q.m.NodeCount(); id++ {
		n, err := q.m.Node(id)
		if err != nil {
			continue
		}
		if q.nodeMatches(n, sub1, sub2) {
			fmt.Fprintf(q.w, "%d ", id)
		}
	}
	fmt.Fprintln(q.w)
}

// nodeMatches decides the two-name intersection for one node. The two
// witnessing ways must be distinct objects: a single way whose name
// contains both substrings does not qualify.
func (q *Query) nodeMatches(n *core.Node, sub1, sub2 string) bool {
	wayIDs := n.WayIDs()
	for _, wid1 := range wayIDs {
		w1, err := q.m.Way(wid1)
		if err != nil || !strings.Contains(w1.Name, sub1) {
			continue
		}
		if sub2 == "" {
			return true
		}
		for _, wid2 := range wayIDs {
			if wid2 == wid1 {
				continue
			}
			w2, err := q.m.Way(wid2)
			if err == nil && strings.Contains(w2.Name, sub2) {
				return true
			}
		}
	}

	return false
}

// TravelTime validates the node sequence, writes the travel time in
// minutes as %.4f on success, and returns it. On a validation failure it
// writes the first offending condition's error line and returns
// TravelTimeFailure; an empty sequence writes nothing and also returns
// TravelTimeFailure.
func (q *Query) TravelTime(ids []int) float64 {
	t, err := route.TravelTime(q.m, ids)
	if err != nil {
		q.printPathError(err)

		return TravelTimeFailure
	}
	fmt.Fprintf(q.w, "%.4f\n", t)

	return t
}

// ShortestPath routes from start to end and writes the node sequence,
// space-separated on one line. Missing endpoints produce the node error
// line; disconnection produces no output at all.
func (q *Query) ShortestPath(start, end int) {
	path, _, err := route.ShortestPath(q.m, start, end)
	if err != nil {
		q.printPathError(err)

		return
	}
	if len(path) == 0 {
		return
	}

	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = fmt.Sprintf("%d", id)
	}
	fmt.Fprintf(q.w, "%s\n", strings.Join(parts, " "))
}

// printPathError renders a validation failure using the fixed,
// period-terminated error grammar of the path operations.
func (q *Query) printPathError(err error) {
	var pe *route.PathError
	if !errors.As(err, &pe) {
		return
	}
	fmt.Fprintf(q.w, "error: %s.\n", pe.Message())
}
