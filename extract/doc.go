// Package extract is the layout extractor (E, spec §4.3) and net merger
// (N, spec §4.4). It reduces a layer.Store into a labeled
// circuitgraph.Graph of transistors and equipotential nets via nine
// ordered passes:
//
//  1. transistor discovery     (transistors.go, §4.3.1)
//  2. contact discovery        (contacts.go, §4.3.2)
//  3. net discovery            (nets.go, §4.3.3)
//  4. gate-net unification     (gates.go, §4.3.4)
//  5. same-layer net merge     (merge_same_layer.go, §4.3.5)
//  6. contact<->net wiring     (wiring.go, §4.3.6)
//  7. transistor<->contact wiring (wiring.go, §4.3.7)
//  8. transistor-adjacency nets (adjacency.go, §4.3.8)
//  9. gate edges                (gates.go, §4.3.9)
//
// followed by the three net-merger absorption rules in absorb.go (§4.4):
// contact absorption, M2 absorption, SI absorption.
//
// Each pass reads the current state of the Circuit and is otherwise pure;
// passes run in the fixed order above (spec §5: no pass depends on
// wall-clock scheduling).
package extract
