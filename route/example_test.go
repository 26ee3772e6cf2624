package route_test

import (
	"fmt"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/route"
)

// ExampleShortestPath routes across a small downtown grid where the only
// way between the endpoints runs through a one-way street.
func ExampleShortestPath() {
	m, _ := core.NewStreetMap(4, 2)
	m.AddWay(0, "King St", 50, false, []int{0, 1, 2})
	m.AddWay(1, "Bay St", 40, true, []int{2, 3})
	m.AddNode(0, 43.6480, -79.3980, []int{0})
	m.AddNode(1, 43.6485, -79.3950, []int{0})
	m.AddNode(2, 43.6490, -79.3920, []int{0, 1})
	m.AddNode(3, 43.6510, -79.3910, []int{1})

	path, _, _ := route.ShortestPath(m, 0, 3)
	fmt.Println(path)

	// Riding Bay St against its direction is impossible.
	back, _, _ := route.ShortestPath(m, 3, 0)
	fmt.Println(len(back))

	// Output:
	// [0 1 2 3]
	// 0
}

// ExampleTravelTime validates a hand-written sequence before timing it.
func ExampleTravelTime() {
	m, _ := core.NewStreetMap(3, 1)
	m.AddWay(0, "Queen St", 60, false, []int{0, 1, 2})
	m.AddNode(0, 43.6500, -79.4000, []int{0})
	m.AddNode(1, 43.6510, -79.3990, []int{0})
	m.AddNode(2, 43.6520, -79.3980, []int{0})

	if _, err := route.TravelTime(m, []int{0, 2}); err != nil {
		fmt.Println(err)
	}

	// Output:
	// route: cannot go directly from node 0 to node 2
}
