package main

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/cif"
	"github.com/opencircuit/lvscheck/extract"
	"github.com/opencircuit/lvscheck/graphio"
	"github.com/opencircuit/lvscheck/netlist"
	"github.com/opencircuit/lvscheck/schematic"
)

// loadGraphs reads a CIF-like layout file and a netlist file and returns
// the extracted layout graph and the compiled schematic graph.
func loadGraphs(layoutPath, netlistPath string, log logr.Logger) (*circuitgraph.Graph, *circuitgraph.Graph, error) {
	layoutFile, err := os.Open(layoutPath)
	if err != nil {
		return nil, nil, fmt.Errorf("lvscheck: opening layout file: %w", err)
	}
	defer layoutFile.Close()

	store, err := cif.Parse(layoutFile, cif.WithLogger(log))
	if err != nil {
		return nil, nil, fmt.Errorf("lvscheck: parsing layout file: %w", err)
	}

	netFile, err := os.Open(netlistPath)
	if err != nil {
		return nil, nil, fmt.Errorf("lvscheck: opening netlist file: %w", err)
	}
	defer netFile.Close()

	records, err := netlist.Parse(netFile)
	if err != nil {
		return nil, nil, fmt.Errorf("lvscheck: parsing netlist file: %w", err)
	}

	layoutGraph := extract.NewCircuit(store, extract.WithLogger(log)).Extract()
	schematicGraph := schematic.Build(records)

	return layoutGraph, schematicGraph, nil
}

// maybeExportGraph writes g as spec §6 JSON to path, unless path is empty.
func maybeExportGraph(path string, g *circuitgraph.Graph) error {
	if path == "" {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lvscheck: creating graph output file: %w", err)
	}
	defer f.Close()

	if err := graphio.Export(f, g); err != nil {
		return fmt.Errorf("lvscheck: exporting graph: %w", err)
	}

	return nil
}
