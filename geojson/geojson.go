package geojson

import (
	gj "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/route"
)

// Route validates ids as a path and renders it as a LineString feature
// with "travel_time_min" and "nodes" properties. Validation failures are
// returned unchanged (*route.PathError and friends).
func Route(m *core.StreetMap, ids []int) (*gj.Feature, error) {
	minutes, err := route.TravelTime(m, ids)
	if err != nil {
		return nil, err
	}

	coords := make([][]float64, 0, len(ids))
	for _, id := range ids {
		n, err := m.Node(id)
		if err != nil {
			return nil, err
		}
		coords = append(coords, []float64{n.Lon, n.Lat})
	}

	f := gj.NewLineStringFeature(coords)
	f.SetProperty("travel_time_min", minutes)
	f.SetProperty("nodes", ids)

	return f, nil
}

// Way renders one way as a LineString feature with "name", "max_speed"
// and "one_way" properties.
func Way(m *core.StreetMap, id int) (*gj.Feature, error) {
	w, err := m.Way(id)
	if err != nil {
		return nil, err
	}

	nodeIDs := w.NodeIDs()
	coords := make([][]float64, 0, len(nodeIDs))
	for _, nid := range nodeIDs {
		n, err := m.Node(nid)
		if err != nil {
			return nil, err
		}
		coords = append(coords, []float64{n.Lon, n.Lat})
	}

	f := gj.NewLineStringFeature(coords)
	f.SetProperty("name", w.Name)
	f.SetProperty("max_speed", w.MaxSpeed)
	f.SetProperty("one_way", w.OneWay)

	return f, nil
}

// Network renders every way of the map as one FeatureCollection.
func Network(m *core.StreetMap) (*gj.FeatureCollection, error) {
	fc := gj.NewFeatureCollection()
	for id := 0; id < m.WayCount(); id++ {
		f, err := Way(m, id)
		if err != nil {
			return nil, err
		}
		fc.AddFeature(f)
	}

	return fc, nil
}
