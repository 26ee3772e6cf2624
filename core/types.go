package core

import "errors"

// Sentinel errors for map construction and lookup.
var (
	// ErrEmptyMap indicates a map was declared with zero nodes or zero ways.
	ErrEmptyMap = errors.New("core: map must declare at least one node and one way")

	// ErrIDRange indicates an identifier outside the declared dense range.
	ErrIDRange = errors.New("core: identifier out of range")

	// ErrDuplicateID indicates the identifier slot is already registered.
	ErrDuplicateID = errors.New("core: identifier already registered")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node does not exist")

	// ErrWayNotFound indicates an operation referenced a non-existent way.
	ErrWayNotFound = errors.New("core: way does not exist")

	// ErrBadSpeed indicates a non-positive maximum speed.
	ErrBadSpeed = errors.New("core: max speed must be strictly positive")

	// ErrShortWay indicates a way polyline with fewer than two nodes.
	ErrShortWay = errors.New("core: way must list at least two nodes")
)

// Node represents a single point in the map.
//
// ID is dense and unique within the map; Lat/Lon are decimal degrees.
// The way membership is held by ID and resolved against the owning map.
type Node struct {
	// ID is the unique identifier of this node.
	ID int

	// Lat is the latitude in decimal degrees.
	Lat float64

	// Lon is the longitude in decimal degrees.
	Lon float64

	// wayIDs lists the ways this node belongs to, in registration order.
	wayIDs []int
}

// WayIDs returns the IDs of the ways this node belongs to, in registration
// order. The slice is freshly allocated; callers may retain and mutate it.
func (n *Node) WayIDs() []int {
	out := make([]int, len(n.wayIDs))
	copy(out, n.wayIDs)

	return out
}

// Way represents a road segment described by an ordered node polyline.
//
// Name is arbitrary display text (possibly empty, not unique). MaxSpeed is
// the legal limit in km/h and is strictly positive. A one-way way permits
// movement only in sequence order.
type Way struct {
	// ID is the unique identifier of this way.
	ID int

	// Name is the display name of the way.
	Name string

	// MaxSpeed is the maximum legal speed in kilometers per hour.
	MaxSpeed float64

	// OneWay reports whether movement is restricted to sequence order.
	OneWay bool

	// nodeIDs is the ordered polyline, length ≥ 2.
	nodeIDs []int
}

// NodeIDs returns the way's ordered node polyline. The slice is freshly
// allocated; callers may retain and mutate it.
func (w *Way) NodeIDs() []int {
	out := make([]int, len(w.nodeIDs))
	copy(out, w.nodeIDs)

	return out
}

// Len returns the number of entries in the way's polyline.
func (w *Way) Len() int { return len(w.nodeIDs) }

// StreetMap is the immutable bundle of all nodes and ways.
//
// Identifiers double as array indices: lookup is O(1) and out-of-range
// identifiers are rejected at registration. A declared slot that is never
// registered is reported as missing by the lookup methods.
type StreetMap struct {
	nodes []*Node
	ways  []*Way
}
