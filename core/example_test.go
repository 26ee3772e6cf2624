package core_test

import (
	"fmt"

	"github.com/katalvlaran/streetmap/core"
)

// ExampleStreetMap_Connected builds a three-node map with a one-way spur
// and probes the direct-step relation.
func ExampleStreetMap_Connected() {
	m, _ := core.NewStreetMap(3, 2)
	m.AddWay(0, "High Street", 50, false, []int{0, 1})
	m.AddWay(1, "Mill Lane", 30, true, []int{1, 2})
	m.AddNode(0, 43.6500, -79.4000, []int{0})
	m.AddNode(1, 43.6510, -79.3990, []int{0, 1})
	m.AddNode(2, 43.6520, -79.3980, []int{1})

	fmt.Println(m.Connected(0, 1)) // two-way, forward
	fmt.Println(m.Connected(1, 0)) // two-way, backward
	fmt.Println(m.Connected(1, 2)) // one-way, with the flow
	fmt.Println(m.Connected(2, 1)) // one-way, against the flow
	fmt.Println(m.Connected(0, 2)) // not adjacent at all

	// Output:
	// true
	// true
	// true
	// false
	// false
}
