// Package isomorphism implements the (sub)isomorphism engine of spec
// §4.7: a VF2-style backtracking search over circuitgraph.Graph values
// with node-label and edge-label feasibility constraints, plus the
// repeated-pattern search used to locate every occurrence of a schematic
// pattern within a layout.
package isomorphism
