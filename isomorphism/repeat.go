package isomorphism

import "github.com/opencircuit/lvscheck/circuitgraph"

// FindRepeatedPatterns repeatedly locates pattern within host (spec §4.7
// "repeated-pattern search"): each hit's matched node set is recorded,
// then the edges that are the image of pattern's edges are removed from
// a working copy of host (nodes stay), and the search retries. Returns
// the node-id sets of every match found, in discovery order.
func FindRepeatedPatterns(pattern, host *circuitgraph.Graph) [][]int {
	working := host.Clone()
	var results [][]int

	for {
		ok, mapping := SubgraphIsomorphic(pattern, working)
		if !ok {
			break
		}

		nodeSet := make([]int, 0, len(mapping))
		for _, hostID := range mapping {
			nodeSet = append(nodeSet, hostID)
		}
		results = append(results, nodeSet)

		for _, e := range pattern.Edges() {
			removeOneEdge(working, mapping[e.Source], mapping[e.Target], e.Label)
		}
	}

	return results
}

// removeOneEdge deletes a single edge of the given label between a and b,
// if one exists. No-op otherwise.
func removeOneEdge(g *circuitgraph.Graph, a, b int, label circuitgraph.EdgeLabel) {
	for _, e := range g.EdgesAt(a) {
		if other(e, a) == b && e.Label == label {
			g.RemoveEdge(e.ID)

			return
		}
	}
}
