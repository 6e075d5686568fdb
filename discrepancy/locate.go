package discrepancy

import (
	"sort"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/isomorphism"
)

// Locate returns the layout node ids suspected of causing a verification
// failure between layout and schematic (spec §4.8), or nil if no
// single-node fix can be localized (either an edge-parity mismatch, or
// trial-deletion exhausted its candidates without restoring
// isomorphism).
//
// See SPEC_FULL.md's Open Questions for why the "reduced side is layout"
// branch below reports the trial-removed candidate itself rather than
// literally the opposite (schematic) side's unmapped nodes: the public
// contract (spec §6) always reports layout node ids, and the candidate
// that was deleted to restore isomorphism is itself the layout-side
// culprit.
func Locate(layout, schematic *circuitgraph.Graph) []int {
	layoutHist := degreeHistogram(layout)
	schematicHist := degreeHistogram(schematic)
	degrees := unionDegrees(layoutHist, schematicHist)

	delta := make(map[int]int, len(degrees))
	parity := 0
	for _, d := range degrees {
		dd := schematicHist[d] - layoutHist[d]
		delta[d] = dd
		parity += d * dd
	}
	if parity != 0 {
		return nil
	}

	var schematicCandidates, layoutCandidates []int
	for _, n := range schematic.Nodes() {
		if delta[schematic.Degree(n.ID)] > 0 {
			schematicCandidates = append(schematicCandidates, n.ID)
		}
	}
	for _, n := range layout.Nodes() {
		if delta[layout.Degree(n.ID)] < 0 {
			layoutCandidates = append(layoutCandidates, n.ID)
		}
	}

	if len(schematicCandidates) <= len(layoutCandidates) {
		return trialReduceAgainst(schematic, schematicCandidates, layout)
	}

	for _, cand := range layoutCandidates {
		clone := layout.Clone()
		clone.RemoveNode(cand)
		if ok, _ := isomorphism.SubgraphIsomorphic(clone, schematic); ok {
			return []int{cand}
		}
	}

	return nil
}

// trialReduceAgainst trial-removes each candidate from reduced in turn
// and retests subgraph isomorphism against other; on the first success it
// returns other's node ids absent from the resulting mapping's image.
func trialReduceAgainst(reduced *circuitgraph.Graph, candidates []int, other *circuitgraph.Graph) []int {
	for _, cand := range candidates {
		clone := reduced.Clone()
		clone.RemoveNode(cand)

		ok, mapping := isomorphism.SubgraphIsomorphic(clone, other)
		if !ok {
			continue
		}

		mapped := make(map[int]bool, len(mapping))
		for _, hostID := range mapping {
			mapped[hostID] = true
		}

		var missing []int
		for _, n := range other.Nodes() {
			if !mapped[n.ID] {
				missing = append(missing, n.ID)
			}
		}
		sort.Ints(missing)

		return missing
	}

	return nil
}

func degreeHistogram(g *circuitgraph.Graph) map[int]int {
	hist := make(map[int]int)
	for _, n := range g.Nodes() {
		hist[g.Degree(n.ID)]++
	}

	return hist
}

func unionDegrees(a, b map[int]int) []int {
	seen := make(map[int]bool)
	var out []int
	for d := range a {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for d := range b {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	sort.Ints(out)

	return out
}
