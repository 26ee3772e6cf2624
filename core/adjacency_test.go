package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/streetmap/core"
)

func TestShareWay(t *testing.T) {
	m := buildScenario(t)

	// 0 and 2 are both on way 0, though not adjacent within it.
	assert.True(t, m.ShareWay(0, 2))
	assert.True(t, m.ShareWay(2, 0))

	// 0 and 3 share nothing.
	assert.False(t, m.ShareWay(0, 3))

	// 2 and 3 share the one-way way 1.
	assert.True(t, m.ShareWay(2, 3))

	// Unregistered identifiers share nothing.
	assert.False(t, m.ShareWay(0, 99))
	assert.False(t, m.ShareWay(-1, 0))
}

func TestAdjacent_IgnoresDirectionality(t *testing.T) {
	m := buildScenario(t)

	assert.True(t, m.Adjacent(0, 1))
	assert.True(t, m.Adjacent(1, 0))

	// Co-members of way 0 but two positions apart.
	assert.False(t, m.Adjacent(0, 2))

	// One-way pair is adjacent in both orders; direction is pass 5's concern.
	assert.True(t, m.Adjacent(2, 3))
	assert.True(t, m.Adjacent(3, 2))

	assert.False(t, m.Adjacent(0, 99))
}

func TestConnected_RespectsDirectionality(t *testing.T) {
	m := buildScenario(t)

	// Two-way hops work in both orders.
	assert.True(t, m.Connected(1, 2))
	assert.True(t, m.Connected(2, 1))

	// The one-way way 1 permits 2→3 only.
	assert.True(t, m.Connected(2, 3))
	assert.False(t, m.Connected(3, 2))

	assert.False(t, m.Connected(0, 2))
	assert.False(t, m.Connected(0, 99))
}

func TestSteps_DirectionAndOrder(t *testing.T) {
	m := buildScenario(t)

	steps := m.Steps(1, 2)
	require.Len(t, steps, 1)
	assert.Equal(t, 0, steps[0].Way.ID)
	assert.False(t, steps[0].Reverse)

	steps = m.Steps(2, 1)
	require.Len(t, steps, 1)
	assert.Equal(t, 0, steps[0].Way.ID)
	assert.True(t, steps[0].Reverse)

	assert.Empty(t, m.Steps(3, 2))
	assert.Empty(t, m.Steps(0, 2))
	assert.Empty(t, m.Steps(0, 99))
}

func TestSteps_MultipleWitnessesKeepWayListOrder(t *testing.T) {
	// Two parallel ways over the same node pair: the enumeration follows
	// the node's way-list order.
	m, err := core.NewStreetMap(2, 2)
	require.NoError(t, err)

	_, err = m.AddWay(0, "slow lane", 30, false, []int{0, 1})
	require.NoError(t, err)
	_, err = m.AddWay(1, "fast lane", 90, false, []int{0, 1})
	require.NoError(t, err)
	_, err = m.AddNode(0, 43.65, -79.40, []int{0, 1})
	require.NoError(t, err)
	_, err = m.AddNode(1, 43.66, -79.39, []int{0, 1})
	require.NoError(t, err)

	steps := m.Steps(0, 1)
	require.Len(t, steps, 2)
	assert.Equal(t, 0, steps[0].Way.ID)
	assert.Equal(t, 1, steps[1].Way.ID)
}

func TestHops_EnumeratesEveryLegalMove(t *testing.T) {
	m := buildScenario(t)

	// Node 1 sits mid-way on way 0 and heads way 2.
	hops := m.Hops(1)
	require.Len(t, hops, 3)
	assert.Equal(t, 0, hops[0].To)
	assert.Equal(t, 0, hops[0].Way.ID)
	assert.Equal(t, 2, hops[1].To)
	assert.Equal(t, 0, hops[1].Way.ID)
	assert.Equal(t, 4, hops[2].To)
	assert.Equal(t, 2, hops[2].Way.ID)

	// Node 2 may step back along way 0 and forward along one-way way 1.
	hops = m.Hops(2)
	require.Len(t, hops, 2)
	assert.Equal(t, 1, hops[0].To)
	assert.Equal(t, 3, hops[1].To)

	// Node 3 terminates the one-way way 1: no legal move at all.
	assert.Empty(t, m.Hops(3))

	assert.Nil(t, m.Hops(99))
}

func TestHopsAgreeWithConnected(t *testing.T) {
	// Every hop the router would take must be a step the validator accepts,
	// and vice versa.
	m := buildScenario(t)

	for u := 0; u < m.NodeCount(); u++ {
		hopSet := make(map[int]bool)
		for _, h := range m.Hops(u) {
			hopSet[h.To] = true
		}
		for v := 0; v < m.NodeCount(); v++ {
			if u == v {
				continue
			}
			assert.Equal(t, m.Connected(u, v), hopSet[v],
				"hop/step disagreement for %d→%d", u, v)
		}
	}
}
