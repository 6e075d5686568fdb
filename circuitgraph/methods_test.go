package circuitgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/lvscheck/circuitgraph"
)

func buildInverter(t *testing.T) *circuitgraph.Graph {
	t.Helper()
	g := circuitgraph.New()
	require.NoError(t, g.AddNode(0, "TP1", circuitgraph.LabelP))
	require.NoError(t, g.AddNode(1, "TN1", circuitgraph.LabelN))
	require.NoError(t, g.AddNode(2, "in", circuitgraph.LabelBus))
	require.NoError(t, g.AddNode(3, "out", circuitgraph.LabelBus))
	require.NoError(t, g.AddNode(4, "vdd", circuitgraph.LabelBus))
	require.NoError(t, g.AddNode(5, "gnd", circuitgraph.LabelBus))

	_, err := g.AddEdge(0, 2, circuitgraph.EdgeGate)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 4, circuitgraph.EdgeTerminal)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 3, circuitgraph.EdgeTerminal)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, circuitgraph.EdgeGate)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 3, circuitgraph.EdgeTerminal)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 5, circuitgraph.EdgeTerminal)
	require.NoError(t, err)

	return g
}

func TestGraphDegreeAndNeighbors(t *testing.T) {
	g := buildInverter(t)
	assert.Equal(t, 3, g.Degree(0))
	assert.ElementsMatch(t, []int{2, 3, 4}, g.Neighbors(0))
	assert.Equal(t, 6, g.NumNodes())
	assert.Equal(t, 6, g.NumEdges())
}

func TestGraphRejectsSelfLoop(t *testing.T) {
	g := circuitgraph.New()
	require.NoError(t, g.AddNode(0, "a", circuitgraph.LabelBus))
	_, err := g.AddEdge(0, 0, circuitgraph.EdgeTerminal)
	assert.ErrorIs(t, err, circuitgraph.ErrSelfLoop)
}

func TestGraphRejectsDuplicateNode(t *testing.T) {
	g := circuitgraph.New()
	require.NoError(t, g.AddNode(0, "a", circuitgraph.LabelBus))
	err := g.AddNode(0, "b", circuitgraph.LabelBus)
	assert.ErrorIs(t, err, circuitgraph.ErrDuplicateNode)
}

func TestGraphCloneIsIndependent(t *testing.T) {
	g := buildInverter(t)
	clone := g.Clone()
	clone.RemoveEdge(0)
	assert.Equal(t, 6, g.NumEdges())
	assert.Equal(t, 5, clone.NumEdges())
}

func TestGraphRemoveNodeDropsIncidentEdges(t *testing.T) {
	g := buildInverter(t)
	g.RemoveNode(2) // "in" bus, incident to both gate edges

	assert.Equal(t, 5, g.NumNodes())
	assert.Equal(t, 4, g.NumEdges())
	assert.False(t, g.HasNode(2))
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 2, g.Degree(1))
}

func TestGraphNextNodeIDTracksHighWaterMark(t *testing.T) {
	g := buildInverter(t)
	assert.Equal(t, 6, g.NextNodeID())
	g.RemoveNode(5)
	assert.Equal(t, 6, g.NextNodeID(), "removal must not lower the high-water mark")
}
