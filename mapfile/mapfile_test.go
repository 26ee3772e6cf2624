package mapfile_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gotidy/ptr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streetmap/core"
	"github.com/katalvlaran/streetmap/mapfile"
)

// scenarioDoc is the document form of the shared 5-node / 3-way fixture.
func scenarioDoc() *mapfile.Document {
	return &mapfile.Document{
		Ways: []mapfile.WayDoc{
			{ID: 0, Name: "Main", MaxSpeed: ptr.Float64(60), OneWay: ptr.Bool(false), NodeIDs: []int{0, 1, 2}},
			{ID: 1, Name: "Main St", MaxSpeed: ptr.Float64(60), OneWay: ptr.Bool(true), NodeIDs: []int{2, 3}},
			{ID: 2, Name: "Oak", MaxSpeed: ptr.Float64(30), NodeIDs: []int{1, 4}},
		},
		Nodes: []mapfile.NodeDoc{
			{ID: 0, Lat: 43.6500, Lon: -79.4000, WayIDs: []int{0}},
			{ID: 1, Lat: 43.6510, Lon: -79.3990, WayIDs: []int{0, 2}},
			{ID: 2, Lat: 43.6520, Lon: -79.3980, WayIDs: []int{0, 1}},
			{ID: 3, Lat: 43.6530, Lon: -79.3970, WayIDs: []int{1}},
			{ID: 4, Lat: 43.6490, Lon: -79.3980, WayIDs: []int{2}},
		},
	}
}

func TestDecode(t *testing.T) {
	raw := `{
	  "nodes": [
	    {"id": 0, "lat": 43.65, "lon": -79.40, "way_ids": [0]},
	    {"id": 1, "lat": 43.66, "lon": -79.39, "way_ids": [0]}
	  ],
	  "ways": [
	    {"id": 0, "name": "High Street", "max_speed": 50, "node_ids": [0, 1]}
	  ]
	}`

	doc, err := mapfile.Decode(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 2)
	require.Len(t, doc.Ways, 1)

	assert.Equal(t, "High Street", doc.Ways[0].Name)
	require.NotNil(t, doc.Ways[0].MaxSpeed)
	assert.Equal(t, 50.0, *doc.Ways[0].MaxSpeed)
	assert.Nil(t, doc.Ways[0].OneWay, "absent one_way stays nil")
}

func TestDecode_Malformed(t *testing.T) {
	_, err := mapfile.Decode(strings.NewReader("{nope"))
	assert.ErrorIs(t, err, mapfile.ErrDecode)
}

func TestBuild(t *testing.T) {
	m, err := scenarioDoc().Build()
	require.NoError(t, err)

	assert.Equal(t, 5, m.NodeCount())
	assert.Equal(t, 3, m.WayCount())

	w, err := m.Way(1)
	require.NoError(t, err)
	assert.True(t, w.OneWay)

	// one_way defaults to two-way when absent.
	w, err = m.Way(2)
	require.NoError(t, err)
	assert.False(t, w.OneWay)

	assert.True(t, m.Connected(2, 3))
	assert.False(t, m.Connected(3, 2))
}

func TestBuild_MissingMaxSpeed(t *testing.T) {
	doc := scenarioDoc()
	doc.Ways[1].MaxSpeed = nil

	_, err := doc.Build()
	assert.ErrorIs(t, err, mapfile.ErrMissingField)
}

func TestBuild_PropagatesCoreValidation(t *testing.T) {
	doc := scenarioDoc()
	doc.Ways[0].MaxSpeed = ptr.Float64(-5)

	_, err := doc.Build()
	assert.ErrorIs(t, err, core.ErrBadSpeed)
}

func TestBuild_BrokenCrossReference(t *testing.T) {
	// Node 3 claims membership of way 0, which does not pass through it.
	doc := scenarioDoc()
	doc.Nodes[3].WayIDs = []int{0, 1}

	_, err := doc.Build()
	assert.ErrorIs(t, err, mapfile.ErrCrossRef)
}

func TestBuild_WayListingForgetfulNode(t *testing.T) {
	// Way 2 passes through node 4, but node 4 stops listing it back.
	doc := scenarioDoc()
	doc.Nodes[4].WayIDs = nil

	_, err := doc.Build()
	assert.ErrorIs(t, err, mapfile.ErrCrossRef)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, scenarioDoc().Encode(&buf))

	doc, err := mapfile.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, scenarioDoc(), doc)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "city.json")

	var buf bytes.Buffer
	require.NoError(t, scenarioDoc().Encode(&buf))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	doc, err := mapfile.Load(path)
	require.NoError(t, err)

	m, err := doc.Build()
	require.NoError(t, err)
	assert.Equal(t, 5, m.NodeCount())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := mapfile.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
