package query_test

import (
	"os"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/query"
)

// ExampleQuery walks the whole line-oriented surface over a tiny downtown:
// a two-way main street crossed by a one-way side street.
func ExampleQuery() {
	m, _ := core.NewStreetMap(5, 3)
	m.AddWay(0, "Main", 60, false, []int{0, 1, 2})
	m.AddWay(1, "Main St", 60, true, []int{2, 3})
	m.AddWay(2, "Oak", 30, false, []int{1, 4})
	m.AddNode(0, 43.6500, -79.4000, []int{0})
	m.AddNode(1, 43.6510, -79.3990, []int{0, 2})
	m.AddNode(2, 43.6520, -79.3980, []int{0, 1})
	m.AddNode(3, 43.6530, -79.3970, []int{1})
	m.AddNode(4, 43.6490, -79.3980, []int{2})

	q := query.New(m, os.Stdout)

	q.PrintWay(2)
	q.PrintNode(1)
	q.ShortestPath(0, 3)
	q.ShortestPath(3, 0) // one-way in the wrong direction: silence
	q.PrintNode(42)

	// Output:
	// Way 2: Oak
	// Node 1: (43.6510000, -79.3990000)
	// 0 1 2 3
	// error: node 42 does not exist
}
