// Package netlist parses the netlist text format consumed by schematic
// (spec §6): one transistor per line, five whitespace-separated tokens
// "<instance_id> <kind> <gate> <drain> <source>".
package netlist
