package graphio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/graphio"
)

func buildSmallGraph(t *testing.T) *circuitgraph.Graph {
	t.Helper()
	g := circuitgraph.New()
	require.NoError(t, g.AddNode(0, "T1", circuitgraph.LabelN))
	require.NoError(t, g.AddNode(1, "g", circuitgraph.LabelBus))
	require.NoError(t, g.AddNode(2, "d", circuitgraph.LabelBus))
	_, err := g.AddEdge(0, 1, circuitgraph.EdgeGate)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, circuitgraph.EdgeTerminal)
	require.NoError(t, err)

	return g
}

func TestExportProducesSpecShape(t *testing.T) {
	g := buildSmallGraph(t)

	var buf bytes.Buffer
	require.NoError(t, graphio.Export(&buf, g))

	assert.Contains(t, buf.String(), `"label":"N"`)
	assert.Contains(t, buf.String(), `"label":"bus"`)
	assert.Contains(t, buf.String(), `"label":"gate"`)
	assert.Contains(t, buf.String(), `"label":"terminal"`)
}

func TestExportImportRoundTrip(t *testing.T) {
	g := buildSmallGraph(t)

	var buf bytes.Buffer
	require.NoError(t, graphio.Export(&buf, g))

	got, err := graphio.Import(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.NumNodes(), got.NumNodes())
	assert.Equal(t, g.NumEdges(), got.NumEdges())
	assert.Equal(t, "T1", got.Node(0).Name)
	assert.Equal(t, circuitgraph.LabelN, got.Node(0).Label)
}
