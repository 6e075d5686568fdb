package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/reduce"
)

// TestReduceCollapsesSeriesStack builds three same-kind transistors
// joined by two degree-2 pass-through nets and checks they collapse to
// one representative node carrying exactly the external edges.
func TestReduceCollapsesSeriesStack(t *testing.T) {
	g := circuitgraph.New()
	ids := []string{"t1", "t2", "t3", "netA", "netB", "netX", "netY", "gA", "gB", "gC"}
	id := make(map[string]int, len(ids))
	for i, name := range ids {
		id[name] = i
		label := circuitgraph.LabelBus
		if name == "t1" || name == "t2" || name == "t3" {
			label = circuitgraph.LabelN
		}
		require.NoError(t, g.AddNode(i, name, label))
	}

	mustEdge := func(a, b string, label circuitgraph.EdgeLabel) {
		_, err := g.AddEdge(id[a], id[b], label)
		require.NoError(t, err)
	}

	mustEdge("t1", "netX", circuitgraph.EdgeTerminal)
	mustEdge("t1", "netA", circuitgraph.EdgeTerminal)
	mustEdge("t1", "gA", circuitgraph.EdgeGate)
	mustEdge("t2", "netA", circuitgraph.EdgeTerminal)
	mustEdge("t2", "netB", circuitgraph.EdgeTerminal)
	mustEdge("t2", "gB", circuitgraph.EdgeGate)
	mustEdge("t3", "netB", circuitgraph.EdgeTerminal)
	mustEdge("t3", "netY", circuitgraph.EdgeTerminal)
	mustEdge("t3", "gC", circuitgraph.EdgeGate)

	out := reduce.Reduce(g)

	// netX, netY, gA, gB, gC survive untouched, plus one new representative.
	assert.Equal(t, 6, out.NumNodes())
	assert.Equal(t, 5, out.NumEdges())

	var repID int
	found := false
	for _, n := range out.Nodes() {
		if n.Label == circuitgraph.LabelN {
			repID = n.ID
			found = true
		}
	}
	require.True(t, found)
	assert.Equal(t, 5, out.Degree(repID))

	// original graph must be untouched
	assert.Equal(t, 10, g.NumNodes())
}

// TestReduceCollapsesParallelPair builds two same-kind transistors
// sharing an identical neighbor set (each net also reaching a third,
// unrelated device so series reduction can't absorb them first) and
// checks they collapse to one representative with one edge per distinct
// neighbor.
func TestReduceCollapsesParallelPair(t *testing.T) {
	g := circuitgraph.New()
	names := []string{"t1", "t2", "t3", "netA", "netB", "netG"}
	id := make(map[string]int, len(names))
	for i, name := range names {
		id[name] = i
		label := circuitgraph.LabelBus
		switch name {
		case "t1", "t2":
			label = circuitgraph.LabelN
		case "t3":
			label = circuitgraph.LabelP
		}
		require.NoError(t, g.AddNode(i, name, label))
	}

	mustEdge := func(a, b string, label circuitgraph.EdgeLabel) {
		_, err := g.AddEdge(id[a], id[b], label)
		require.NoError(t, err)
	}

	mustEdge("t1", "netA", circuitgraph.EdgeTerminal)
	mustEdge("t2", "netA", circuitgraph.EdgeTerminal)
	mustEdge("t3", "netA", circuitgraph.EdgeTerminal)
	mustEdge("t1", "netB", circuitgraph.EdgeTerminal)
	mustEdge("t2", "netB", circuitgraph.EdgeTerminal)
	mustEdge("t3", "netB", circuitgraph.EdgeTerminal)
	mustEdge("t1", "netG", circuitgraph.EdgeGate)
	mustEdge("t2", "netG", circuitgraph.EdgeGate)

	out := reduce.Reduce(g)

	assert.Equal(t, 5, out.NumNodes()) // t3, netA, netB, netG, representative
	assert.Equal(t, 5, out.NumEdges())

	var repID int
	for _, n := range out.Nodes() {
		if n.Label == circuitgraph.LabelN {
			repID = n.ID
		}
	}
	assert.Equal(t, 3, out.Degree(repID))
}
