package reduce

import (
	"fmt"
	"sort"
	"strings"

	"github.com/opencircuit/lvscheck/circuitgraph"
)

type parallelKey struct {
	label      circuitgraph.NodeLabel
	neighbors  string
	edgeLabels string
}

// reduceParallelOnce collapses every equivalence class of >=2
// parallel-equivalent transistors (spec §4.6 parallel rule: degree 3,
// identical kind, identical neighbor set, identical multiset of
// (neighbor, edge-label) pairs) into one representative node wired to
// each distinct neighbor with that neighbor's edge label. Reports
// whether any collapse occurred.
func reduceParallelOnce(g *circuitgraph.Graph) bool {
	groups := make(map[parallelKey][]int)

	for _, n := range g.Nodes() {
		if g.Degree(n.ID) != 3 || !isTransistorLabel(n.Label) {
			continue
		}

		edges := g.EdgesAt(n.ID)
		type pair struct {
			id    int
			label circuitgraph.EdgeLabel
		}
		pairs := make([]pair, 0, len(edges))
		for _, e := range edges {
			pairs = append(pairs, pair{other(e, n.ID), e.Label})
		}
		sort.Slice(pairs, func(i, j int) bool {
			if pairs[i].id != pairs[j].id {
				return pairs[i].id < pairs[j].id
			}

			return pairs[i].label < pairs[j].label
		})

		neighborIDs := make([]int, len(pairs))
		var labelBuf strings.Builder
		for i, p := range pairs {
			neighborIDs[i] = p.id
			fmt.Fprintf(&labelBuf, "%d:%s;", p.id, p.label)
		}

		k := parallelKey{label: n.Label, neighbors: fmt.Sprint(neighborIDs), edgeLabels: labelBuf.String()}
		groups[k] = append(groups[k], n.ID)
	}

	changed := false
	for k, ids := range groups {
		if len(ids) < 2 {
			continue
		}
		changed = true

		rep := g.NextNodeID()
		_ = g.AddNode(rep, fmt.Sprintf("%s_parallel%d", k.label, rep), k.label)

		seen := make(map[int]bool)
		for _, e := range g.EdgesAt(ids[0]) {
			nb := other(e, ids[0])
			if seen[nb] {
				continue
			}
			seen[nb] = true
			_, _ = g.AddEdge(rep, nb, e.Label)
		}

		for _, id := range ids {
			g.RemoveNode(id)
		}
	}

	return changed
}
