// Package discrepancy implements the discrepancy locator of spec §4.8:
// a degree-histogram parity check followed by trial-deletion search for
// the single node whose removal restores isomorphism.
package discrepancy
