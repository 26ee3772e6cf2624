package route_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/route"
)

// buildGrid lays out an n×n block grid: one east–west way per row, one
// north–south way per column, every crossing shared.
func buildGrid(b *testing.B, n int) *core.StreetMap {
	b.Helper()

	m, err := core.NewStreetMap(n*n, 2*n)
	if err != nil {
		b.Fatal(err)
	}

	for r := 0; r < n; r++ {
		ids := make([]int, n)
		for c := 0; c < n; c++ {
			ids[c] = r*n + c
		}
		if _, err = m.AddWay(r, fmt.Sprintf("Row %d", r), 50, false, ids); err != nil {
			b.Fatal(err)
		}
	}
	for c := 0; c < n; c++ {
		ids := make([]int, n)
		for r := 0; r < n; r++ {
			ids[r] = r*n + c
		}
		if _, err = m.AddWay(n+c, fmt.Sprintf("Col %d", c), 50, false, ids); err != nil {
			b.Fatal(err)
		}
	}

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := r*n + c
			lat := 43.6 + float64(r)*0.001
			lon := -79.4 + float64(c)*0.001
			if _, err = m.AddNode(id, lat, lon, []int{r, n + c}); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkShortestPath_Grid20(b *testing.B) {
	m := buildGrid(b, 20)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, _, err := route.ShortestPath(m, 0, 20*20-1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTravelTime_GridRow20(b *testing.B) {
	m := buildGrid(b, 20)
	ids := make([]int, 20)
	for c := 0; c < 20; c++ {
		ids[c] = c
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := route.TravelTime(m, ids); err != nil {
			b.Fatal(err)
		}
	}
}
