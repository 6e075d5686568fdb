package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/extract"
	"github.com/opencircuit/lvscheck/geom"
	"github.com/opencircuit/lvscheck/layer"
)

func rect(x0, y0, x1, y1 int) geom.Polygon {
	p, err := geom.NewPolygon([]geom.Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
	if err != nil {
		panic(err)
	}

	return p
}

// TestExtractSingleTransistorEndToEnd builds one n-channel transistor with
// both terminals contacted to M1 and its gate overlapped by an SI strip,
// and checks the final graph has the transistor wired to all three nets
// (spec §8 invariant 1: exactly two terminal nets and at least one gate
// net).
func TestExtractSingleTransistorEndToEnd(t *testing.T) {
	store := layer.NewStore()

	store.Add("NA", rect(0, 0, 100, 40))
	store.Add("SN", rect(40, -10, 60, 50))
	store.Add("SI", rect(40, -20, 60, 60))

	// drain-side tap: CNA contact fully inside the left NA piece, M1
	// patch identical to that piece (ohmic-tap identity rule).
	store.Add("CNA", rect(5, 5, 15, 15))
	store.Add("M1", rect(0, 0, 40, 40))

	// source-side tap: same family, right-hand piece.
	store.Add("CNA", rect(65, 5, 75, 15))
	store.Add("M1", rect(60, 0, 100, 40))

	c := extract.NewCircuit(store)
	g := c.Extract()

	require.Len(t, c.Transistors, 1)
	tr := c.Transistors[0]
	assert.Len(t, tr.TerminalNets, 2)
	assert.Len(t, tr.GateNets, 1)

	assert.Equal(t, 4, g.NumNodes()) // transistor + 2 M1 nets + 1 SI net
	assert.Equal(t, 3, g.NumEdges()) // 2 terminal + 1 gate

	node := g.Node(int(tr.ID))
	require.NotNil(t, node)
	assert.Equal(t, circuitgraph.LabelN, node.Label)
	assert.Equal(t, 3, g.Degree(int(tr.ID)))
}

// TestExtractMissingContactWeakensGraph checks that a transistor whose
// terminals were never contacted still appears in the final graph, just
// with no terminal edges (spec §7: a missing contact weakens the graph,
// it never aborts extraction).
func TestExtractMissingContactWeakensGraph(t *testing.T) {
	store := layer.NewStore()
	store.Add("NA", rect(0, 0, 100, 40))
	store.Add("SN", rect(40, -10, 60, 50))

	c := extract.NewCircuit(store)
	g := c.Extract()

	require.Len(t, c.Transistors, 1)
	tr := c.Transistors[0]
	assert.Empty(t, tr.TerminalNets)
	assert.Empty(t, tr.GateNets)
	assert.Equal(t, 0, g.Degree(int(tr.ID)))
}

// TestExtractSynthesizesAdjacencyAcrossSharedDiffusion checks that two
// transistors whose diffusion regions directly touch, with no contact
// bridging them, still end up connected in the final graph via a
// synthesized dummy net (spec §4.3.8).
func TestExtractSynthesizesAdjacencyAcrossSharedDiffusion(t *testing.T) {
	store := layer.NewStore()

	// One long NA strip crossed by two separate gates, leaving a shared
	// middle diffusion island between them that belongs to both
	// transistors' source/drain once split.
	store.Add("NA", rect(0, 0, 150, 40))
	store.Add("SN", rect(20, -10, 40, 50))
	store.Add("SN", rect(80, -10, 100, 50))

	c := extract.NewCircuit(store)
	g := c.Extract()

	require.Len(t, c.Transistors, 2)

	var adjacencyNets int
	for _, n := range c.Nets {
		if n.Layer == "NA" && n.Visible {
			adjacencyNets++
		}
	}
	assert.GreaterOrEqual(t, adjacencyNets, 1, "expected at least one synthesized NA adjacency net")
	assert.GreaterOrEqual(t, g.NumEdges(), 1)
}
