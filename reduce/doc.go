// Package reduce canonicalizes a circuitgraph.Graph by collapsing
// series and parallel stacks of identically-kinded transistors (spec
// §4.6), so the isomorphism engine compares shapes rather than drawing
// style.
package reduce
