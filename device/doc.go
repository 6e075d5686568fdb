// Package device holds the spec §3 data model produced by extraction:
// Transistor, Contact, and Net, plus the per-Circuit id allocator.
//
// Every cross-entity reference is an integer id, never a pointer (spec
// §9 "cyclic references avoided" -- a net knows its transistors, a
// transistor knows its nets, and the apparent cycle dissolves into two
// independently-mutable id sets).
package device
