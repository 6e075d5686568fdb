package reduce

import (
	"fmt"

	"github.com/opencircuit/lvscheck/circuitgraph"
)

// reduceSeriesOnce finds every maximal series-connected component (spec
// §4.6 series rule) and collapses each into one representative
// transistor node whose incident edges are exactly the component's
// external edges. Reports whether any collapse occurred.
func reduceSeriesOnce(g *circuitgraph.Graph) bool {
	visited := make(map[int]bool)
	var components [][]int
	var labels []circuitgraph.NodeLabel

	for _, n := range g.Nodes() {
		if visited[n.ID] || g.Degree(n.ID) != 3 || !isTransistorLabel(n.Label) {
			continue
		}

		label := n.Label
		component := growComponent(g, n.ID, label)

		deg3 := 0
		for id := range component {
			if g.Degree(id) == 3 {
				deg3++
			}
		}
		if deg3 < 2 {
			continue
		}

		ids := make([]int, 0, len(component))
		for id := range component {
			ids = append(ids, id)
			visited[id] = true
		}
		components = append(components, ids)
		labels = append(labels, label)
	}

	if len(components) == 0 {
		return false
	}

	for i, ids := range components {
		collapseComponent(g, ids, labels[i])
	}

	return true
}

// growComponent runs the admissibility-filtered BFS of spec §4.6: a
// candidate joins if it is a degree-3 transistor of the starting kind, or
// a degree-2 net reached by a non-gate edge.
func growComponent(g *circuitgraph.Graph, start int, label circuitgraph.NodeLabel) map[int]bool {
	localVisited := make(map[int]bool)
	component := make(map[int]bool)
	queue := []int{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if localVisited[current] {
			continue
		}

		deg := g.Degree(current)
		node := g.Node(current)
		switch {
		case deg == 3 && isTransistorLabel(node.Label):
			if node.Label != label {
				continue
			}
		case deg == 2 && node.Label == circuitgraph.LabelBus:
			// pass-through net, admissible regardless of kind
		default:
			continue
		}

		localVisited[current] = true
		component[current] = true

		for _, e := range g.EdgesAt(current) {
			nb := other(e, current)
			if localVisited[nb] {
				continue
			}
			if g.Degree(nb) == 2 && e.Label == circuitgraph.EdgeGate {
				continue
			}
			queue = append(queue, nb)
		}
	}

	return component
}

// collapseComponent replaces every node in ids with one representative
// node of the given label, wired to exactly the component's external
// edges (spec §4.6: edges are preserved, not deduplicated by neighbor,
// unlike the parallel rule).
func collapseComponent(g *circuitgraph.Graph, ids []int, label circuitgraph.NodeLabel) {
	inComponent := make(map[int]bool, len(ids))
	for _, id := range ids {
		inComponent[id] = true
	}

	type extEdge struct {
		neighbor int
		label    circuitgraph.EdgeLabel
	}
	var externals []extEdge
	for _, id := range ids {
		for _, e := range g.EdgesAt(id) {
			nb := other(e, id)
			if inComponent[nb] {
				continue
			}
			externals = append(externals, extEdge{nb, e.Label})
		}
	}

	rep := g.NextNodeID()
	_ = g.AddNode(rep, fmt.Sprintf("%s_series%d", label, rep), label)
	for _, ext := range externals {
		_, _ = g.AddEdge(rep, ext.neighbor, ext.label)
	}

	for _, id := range ids {
		g.RemoveNode(id)
	}
}
