package discrepancy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/discrepancy"
)

// buildPairSchematic is two N-transistors sharing one "out" net of
// degree 2.
func buildPairSchematic(t *testing.T) *circuitgraph.Graph {
	t.Helper()
	g := circuitgraph.New()
	names := map[int]struct {
		name  string
		label circuitgraph.NodeLabel
	}{
		0: {"T1", circuitgraph.LabelN}, 1: {"T2", circuitgraph.LabelN},
		2: {"g1", circuitgraph.LabelBus}, 3: {"g2", circuitgraph.LabelBus},
		4: {"v1", circuitgraph.LabelBus}, 5: {"v2", circuitgraph.LabelBus},
		6: {"out", circuitgraph.LabelBus},
	}
	for id := 0; id < len(names); id++ {
		info := names[id]
		require.NoError(t, g.AddNode(id, info.name, info.label))
	}
	mustEdge := func(a, b int, label circuitgraph.EdgeLabel) {
		_, err := g.AddEdge(a, b, label)
		require.NoError(t, err)
	}
	mustEdge(0, 2, circuitgraph.EdgeGate)
	mustEdge(0, 6, circuitgraph.EdgeTerminal)
	mustEdge(0, 4, circuitgraph.EdgeTerminal)
	mustEdge(1, 3, circuitgraph.EdgeGate)
	mustEdge(1, 6, circuitgraph.EdgeTerminal)
	mustEdge(1, 5, circuitgraph.EdgeTerminal)

	return g
}

// buildPairLayoutBrokenNet is the same circuit, but the shared "out" net
// is split into two single-terminal nets (a missing contact), keeping
// edge count identical to the schematic.
func buildPairLayoutBrokenNet(t *testing.T) *circuitgraph.Graph {
	t.Helper()
	g := circuitgraph.New()
	names := map[int]struct {
		name  string
		label circuitgraph.NodeLabel
	}{
		0: {"T1", circuitgraph.LabelN}, 1: {"T2", circuitgraph.LabelN},
		2: {"g1", circuitgraph.LabelBus}, 3: {"g2", circuitgraph.LabelBus},
		4: {"v1", circuitgraph.LabelBus}, 5: {"v2", circuitgraph.LabelBus},
		6: {"out_a", circuitgraph.LabelBus}, 7: {"out_b", circuitgraph.LabelBus},
	}
	for id := 0; id < len(names); id++ {
		info := names[id]
		require.NoError(t, g.AddNode(id, info.name, info.label))
	}
	mustEdge := func(a, b int, label circuitgraph.EdgeLabel) {
		_, err := g.AddEdge(a, b, label)
		require.NoError(t, err)
	}
	mustEdge(0, 2, circuitgraph.EdgeGate)
	mustEdge(0, 6, circuitgraph.EdgeTerminal)
	mustEdge(0, 4, circuitgraph.EdgeTerminal)
	mustEdge(1, 3, circuitgraph.EdgeGate)
	mustEdge(1, 7, circuitgraph.EdgeTerminal)
	mustEdge(1, 5, circuitgraph.EdgeTerminal)

	return g
}

func TestLocateFindsBrokenNetHalves(t *testing.T) {
	schematic := buildPairSchematic(t)
	layout := buildPairLayoutBrokenNet(t)

	got := discrepancy.Locate(layout, schematic)
	assert.Equal(t, []int{6, 7}, got)
}

func TestLocateReturnsNilOnEdgeParityMismatch(t *testing.T) {
	schematic := buildPairSchematic(t)

	layout := circuitgraph.New()
	require.NoError(t, layout.AddNode(0, "T1", circuitgraph.LabelN))
	require.NoError(t, layout.AddNode(1, "g1", circuitgraph.LabelBus))
	_, err := layout.AddEdge(0, 1, circuitgraph.EdgeGate)
	require.NoError(t, err)

	assert.Nil(t, discrepancy.Locate(layout, schematic))
}
