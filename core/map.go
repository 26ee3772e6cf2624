package core

import (
	"fmt"

	"github.com/katalvlaran/streetmap/geo"
)

// NewStreetMap allocates an empty map for exactly nrNodes nodes and nrWays
// ways. Both counts must be positive; identifiers are assigned densely from
// zero by the subsequent AddNode/AddWay calls.
//
// Complexity: O(nrNodes + nrWays).
func NewStreetMap(nrNodes, nrWays int) (*StreetMap, error) {
	if nrNodes <= 0 || nrWays <= 0 {
		return nil, fmt.Errorf("%w: %d nodes, %d ways", ErrEmptyMap, nrNodes, nrWays)
	}

	return &StreetMap{
		nodes: make([]*Node, nrNodes),
		ways:  make([]*Way, nrWays),
	}, nil
}

// AddWay registers a way under the given dense identifier.
//
// The polyline is copied; the caller keeps ownership of its slice. nodeIDs
// entries are range-checked against the declared node capacity, but the
// referenced nodes need not be registered yet: ways and nodes may arrive in
// any order.
//
// Complexity: O(len(nodeIDs)).
func (m *StreetMap) AddWay(id int, name string, maxSpeed float64, oneWay bool, nodeIDs []int) (*Way, error) {
	if id < 0 || id >= len(m.ways) {
		return nil, fmt.Errorf("%w: way %d", ErrIDRange, id)
	}
	if m.ways[id] != nil {
		return nil, fmt.Errorf("%w: way %d", ErrDuplicateID, id)
	}
	if maxSpeed <= 0 {
		return nil, fmt.Errorf("%w: way %d has max speed %v", ErrBadSpeed, id, maxSpeed)
	}
	if len(nodeIDs) < 2 {
		return nil, fmt.Errorf("%w: way %d lists %d node(s)", ErrShortWay, id, len(nodeIDs))
	}
	for _, nid := range nodeIDs {
		if nid < 0 || nid >= len(m.nodes) {
			return nil, fmt.Errorf("%w: way %d references node %d", ErrIDRange, id, nid)
		}
	}

	w := &Way{
		ID:       id,
		Name:     name,
		MaxSpeed: maxSpeed,
		OneWay:   oneWay,
		nodeIDs:  append([]int(nil), nodeIDs...),
	}
	m.ways[id] = w

	return w, nil
}

// AddNode registers a node under the given dense identifier.
//
// wayIDs lists the ways the node belongs to; entries are range-checked
// against the declared way capacity. Cross-reference consistency (every
// listed way actually containing this node) is the map builder's concern,
// verified after both sides are registered.
//
// Complexity: O(len(wayIDs)).
func (m *StreetMap) AddNode(id int, lat, lon float64, wayIDs []int) (*Node, error) {
	if id < 0 || id >= len(m.nodes) {
		return nil, fmt.Errorf("%w: node %d", ErrIDRange, id)
	}
	if m.nodes[id] != nil {
		return nil, fmt.Errorf("%w: node %d", ErrDuplicateID, id)
	}
	for _, wid := range wayIDs {
		if wid < 0 || wid >= len(m.ways) {
			return nil, fmt.Errorf("%w: node %d references way %d", ErrIDRange, id, wid)
		}
	}

	n := &Node{
		ID:     id,
		Lat:    lat,
		Lon:    lon,
		wayIDs: append([]int(nil), wayIDs...),
	}
	m.nodes[id] = n

	return n, nil
}

// Node returns the node with the given identifier, or ErrNodeNotFound when
// the identifier is out of range or the slot was never registered.
// Complexity: O(1).
func (m *StreetMap) Node(id int) (*Node, error) {
	if id < 0 || id >= len(m.nodes) || m.nodes[id] == nil {
		return nil, fmt.Errorf("%w: node %d", ErrNodeNotFound, id)
	}

	return m.nodes[id], nil
}

// Way returns the way with the given identifier, or ErrWayNotFound when the
// identifier is out of range or the slot was never registered.
// Complexity: O(1).
func (m *StreetMap) Way(id int) (*Way, error) {
	if id < 0 || id >= len(m.ways) || m.ways[id] == nil {
		return nil, fmt.Errorf("%w: way %d", ErrWayNotFound, id)
	}

	return m.ways[id], nil
}

// HasNode reports whether a node with the given identifier is registered.
func (m *StreetMap) HasNode(id int) bool {
	return id >= 0 && id < len(m.nodes) && m.nodes[id] != nil
}

// HasWay reports whether a way with the given identifier is registered.
func (m *StreetMap) HasWay(id int) bool {
	return id >= 0 && id < len(m.ways) && m.ways[id] != nil
}

// NodeCount returns the declared number of node slots.
func (m *StreetMap) NodeCount() int { return len(m.nodes) }

// WayCount returns the declared number of way slots.
func (m *StreetMap) WayCount() int { return len(m.ways) }

// Distance returns the great-circle distance in kilometers between two
// registered nodes. Both identifiers must refer to registered nodes; the
// adjacency and routing layers only call it with validated IDs.
func (m *StreetMap) Distance(u, v int) float64 {
	a, b := m.nodes[u], m.nodes[v]

	return geo.Distance(a.Lat, a.Lon, b.Lat, b.Lon)
}
