// Package schematic builds the schematic-side circuitgraph.Graph (spec
// §4.5) from netlist records: one bus node per distinct net name, one
// transistor node per record, terminal edges to drain/source and a gate
// edge to the gate net. No geometry is involved.
package schematic
