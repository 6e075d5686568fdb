package schematic

import (
	"strconv"

	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/device"
)

// Record is one netlist transistor entry (spec §6): instance id, kind,
// and the three net names it is wired to.
type Record struct {
	InstanceID string
	Kind       device.Kind
	Gate       string
	Drain      string
	Source     string
}

// Build assembles the schematic graph (spec §4.5). For every distinct net
// name encountered across all records, a single bus node is created; each
// record contributes one transistor node with terminal edges to its
// drain/source nets and a gate edge to its gate net.
//
// Grounded on original_source ElecrticalCircuit.compile/graph_nx_compile,
// which likewise folds repeated net names into one bus per name before
// wiring transistor edges.
func Build(records []Record) *circuitgraph.Graph {
	g := circuitgraph.New()

	var ids device.IDAllocator
	netNodes := make(map[string]int)

	nodeForNet := func(name string) int {
		if id, ok := netNodes[name]; ok {
			return id
		}
		id := int(ids.Next())
		netNodes[name] = id
		_ = g.AddNode(id, name, circuitgraph.LabelBus)

		return id
	}

	for _, r := range records {
		tid := int(ids.Next())
		label := circuitgraph.LabelN
		if r.Kind == device.KindP {
			label = circuitgraph.LabelP
		}
		name := r.InstanceID
		if name == "" {
			name = string(r.Kind) + strconv.Itoa(tid)
		}
		_ = g.AddNode(tid, name, label)

		drainID := nodeForNet(r.Drain)
		sourceID := nodeForNet(r.Source)
		gateID := nodeForNet(r.Gate)

		_, _ = g.AddEdge(tid, drainID, circuitgraph.EdgeTerminal)
		_, _ = g.AddEdge(tid, sourceID, circuitgraph.EdgeTerminal)
		_, _ = g.AddEdge(tid, gateID, circuitgraph.EdgeGate)
	}

	return g
}
