package isomorphism

import "github.com/opencircuit/lvscheck/circuitgraph"

// Mapping is pattern node id -> host node id.
type Mapping map[int]int

// SubgraphIsomorphic finds an induced subgraph of host isomorphic to
// pattern: the mapped image carries exactly pattern's edges, no more.
func SubgraphIsomorphic(pattern, host *circuitgraph.Graph) (bool, Mapping) {
	return search(pattern, host, true)
}

// SubgraphMonomorphic relaxes "induced": host may carry additional edges
// among the mapped nodes beyond pattern's image.
func SubgraphMonomorphic(pattern, host *circuitgraph.Graph) (bool, Mapping) {
	return search(pattern, host, false)
}

// search is a VF2-style backtracking match: pattern nodes are assigned
// host candidates one at a time, in pattern node order, pruned by label
// equality and, against every already-mapped pattern node, by the
// edge-label-multiset constraint (spec §4.7).
func search(pattern, host *circuitgraph.Graph, induced bool) (bool, Mapping) {
	patternNodes := pattern.Nodes()
	hostNodes := host.Nodes()

	mapping := make(Mapping, len(patternNodes))
	used := make(map[int]bool, len(patternNodes))

	var try func(i int) bool
	try = func(i int) bool {
		if i == len(patternNodes) {
			return true
		}
		pn := patternNodes[i]

		for _, hn := range hostNodes {
			if used[hn.ID] || hn.Label != pn.Label {
				continue
			}
			if host.Degree(hn.ID) < pattern.Degree(pn.ID) {
				continue
			}
			if !consistent(pattern, host, mapping, pn.ID, hn.ID, induced) {
				continue
			}

			mapping[pn.ID] = hn.ID
			used[hn.ID] = true
			if try(i + 1) {
				return true
			}
			delete(mapping, pn.ID)
			used[hn.ID] = false
		}

		return false
	}

	if try(0) {
		return true, mapping
	}

	return false, nil
}

// consistent checks candidate assignment pn->hn against every pattern
// node already present in mapping: induced mode requires an exact
// edge-label-multiset match between (pn, qn) and (hn, mapping[qn]);
// monomorphism mode only requires host's multiset to cover pattern's.
func consistent(pattern, host *circuitgraph.Graph, mapping Mapping, pn, hn int, induced bool) bool {
	for qn, qhn := range mapping {
		patternCounts := edgeLabelCounts(pattern, pn, qn)
		hostCounts := edgeLabelCounts(host, hn, qhn)

		if induced {
			if !countsEqual(patternCounts, hostCounts) {
				return false
			}
		} else if !countsSubset(patternCounts, hostCounts) {
			return false
		}
	}

	return true
}

func edgeLabelCounts(g *circuitgraph.Graph, a, b int) map[circuitgraph.EdgeLabel]int {
	counts := make(map[circuitgraph.EdgeLabel]int)
	for _, e := range g.EdgesAt(a) {
		if other(e, a) == b {
			counts[e.Label]++
		}
	}

	return counts
}

func countsEqual(a, b map[circuitgraph.EdgeLabel]int) bool {
	if len(a) != len(b) {
		return false
	}
	for label, n := range a {
		if b[label] != n {
			return false
		}
	}

	return true
}

func countsSubset(a, b map[circuitgraph.EdgeLabel]int) bool {
	for label, n := range a {
		if b[label] < n {
			return false
		}
	}

	return true
}

func other(e *circuitgraph.Edge, from int) int {
	if e.Source == from {
		return e.Target
	}

	return e.Source
}
