package reduce

import "github.com/opencircuit/lvscheck/circuitgraph"

// Reduce returns a new graph with series and parallel transistor stacks
// collapsed to single representative nodes (spec §4.6). g is left
// unmodified. Series reduction runs before parallel reduction on each
// round; both rules are applied until neither fires.
//
// Grounded on original_source verification.compress_series_nodes and
// compress_parallel_nodes, which operate on a copy of the nx graph and
// are invoked in that same order before isomorphism testing.
func Reduce(g *circuitgraph.Graph) *circuitgraph.Graph {
	cur := g.Clone()

	for {
		seriesChanged := reduceSeriesOnce(cur)
		parallelChanged := reduceParallelOnce(cur)
		if !seriesChanged && !parallelChanged {
			return cur
		}
	}
}

func other(e *circuitgraph.Edge, from int) int {
	if e.Source == from {
		return e.Target
	}

	return e.Source
}

func isTransistorLabel(label circuitgraph.NodeLabel) bool {
	return label == circuitgraph.LabelN || label == circuitgraph.LabelP
}
