// Package verify implements the two top-level entry points of spec §5/§6:
// Verify (layout-vs-schematic equivalence) and FindSubcircuits (repeated
// pattern search). Both are blocking calls with no suspension points and
// no cancellation token, per spec §5.
package verify
