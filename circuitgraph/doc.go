// Package circuitgraph is the undirected labeled multigraph shared by the
// layout extractor and the schematic builder (spec §3 "Circuit graph").
// Node labels are drawn from {N, P, bus}; edge labels from {terminal,
// gate}. Node ids are stable within one build.
//
// This is a purpose-built, label-aware sibling of a generic graph
// substrate: unlike a general graph library, every node and edge here
// carries the label that the (sub)isomorphism engine's feasibility
// predicate depends on, so labels live on the type itself rather than in
// a loosely-typed metadata bag.
package circuitgraph
