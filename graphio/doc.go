// Package graphio exports and imports circuitgraph.Graph values in the
// JSON shape spec §6 defines for graph output: two arrays of nodes and
// edges, node ids stable, only visible nets present.
package graphio
