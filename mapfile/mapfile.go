package mapfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/streetmap/core"
)

// Sentinel errors for document handling.
var (
	// ErrDecode indicates the input is not a valid map document.
	ErrDecode = errors.New("mapfile: malformed map document")

	// ErrMissingField indicates a required document field is absent.
	ErrMissingField = errors.New("mapfile: required field missing")

	// ErrCrossRef indicates the node/way cross-references are inconsistent.
	ErrCrossRef = errors.New("mapfile: node/way cross-reference broken")
)

// NodeDoc is the document form of one node.
type NodeDoc struct {
	ID     int     `json:"id"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	WayIDs []int   `json:"way_ids"`
}

// WayDoc is the document form of one way. MaxSpeed is required; OneWay is
// optional and defaults to two-way.
type WayDoc struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	MaxSpeed *float64 `json:"max_speed"`
	OneWay   *bool    `json:"one_way,omitempty"`
	NodeIDs  []int    `json:"node_ids"`
}

// Document is a complete street-map description.
type Document struct {
	Nodes []NodeDoc `json:"nodes"`
	Ways  []WayDoc  `json:"ways"`
}

// Decode reads one JSON map document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return &doc, nil
}

// Load reads and decodes the map document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes the document to w as JSON.
func (d *Document) Encode(w io.Writer) error {
	buf, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("mapfile: encode: %w", err)
	}
	if _, err = w.Write(buf); err != nil {
		return fmt.Errorf("mapfile: write: %w", err)
	}

	return nil
}

// Build registers the document's ways and nodes into a fresh StreetMap and
// verifies the cross-reference invariants in both directions.
func (d *Document) Build() (*core.StreetMap, error) {
	m, err := core.NewStreetMap(len(d.Nodes), len(d.Ways))
	if err != nil {
		return nil, err
	}

	for _, wd := range d.Ways {
		if wd.MaxSpeed == nil {
			return nil, fmt.Errorf("%w: way %d has no max_speed", ErrMissingField, wd.ID)
		}
		oneWay := false
		if wd.OneWay != nil {
			oneWay = *wd.OneWay
		}
		if _, err = m.AddWay(wd.ID, wd.Name, *wd.MaxSpeed, oneWay, wd.NodeIDs); err != nil {
			return nil, err
		}
	}

	for _, nd := range d.Nodes {
		if _, err = m.AddNode(nd.ID, nd.Lat, nd.Lon, nd.WayIDs); err != nil {
			return nil, err
		}
	}

	if err = verify(m, d); err != nil {
		return nil, err
	}

	return m, nil
}

// verify checks that every slot was registered and that node→way and
// way→node references agree.
func verify(m *core.StreetMap, d *Document) error {
	for id := 0; id < m.NodeCount(); id++ {
		if !m.HasNode(id) {
			return fmt.Errorf("%w: node %d never registered", ErrCrossRef, id)
		}
	}
	for id := 0; id < m.WayCount(); id++ {
		if !m.HasWay(id) {
			return fmt.Errorf("%w: way %d never registered", ErrCrossRef, id)
		}
	}

	// Every way a node lists must contain the node in its polyline.
	for _, nd := range d.Nodes {
		for _, wid := range nd.WayIDs {
			w, err := m.Way(wid)
			if err != nil {
				return fmt.Errorf("%w: node %d lists way %d", ErrCrossRef, nd.ID, wid)
			}
			if !containsInt(w.NodeIDs(), nd.ID) {
				return fmt.Errorf("%w: node %d lists way %d, which does not pass through it", ErrCrossRef, nd.ID, wid)
			}
		}
	}

	// Every node a way lists must list the way back.
	for _, wd := range d.Ways {
		for _, nid := range wd.NodeIDs {
			n, err := m.Node(nid)
			if err != nil {
				return fmt.Errorf("%w: way %d lists node %d", ErrCrossRef, wd.ID, nid)
			}
			if !containsInt(n.WayIDs(), wd.ID) {
				return fmt.Errorf("%w: way %d passes through node %d, which does not list it", ErrCrossRef, wd.ID, nid)
			}
		}
	}

	return nil
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}

	return false
}
