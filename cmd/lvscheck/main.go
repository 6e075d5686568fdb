// Command lvscheck wires the cif/netlist parsers, the extract/schematic
// builders, and verify's top-level entry points into a CLI: layout vs.
// schematic equivalence checking and repeated-subcircuit search.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
