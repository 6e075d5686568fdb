package extract

import (
	"github.com/opencircuit/lvscheck/circuitgraph"
	"github.com/opencircuit/lvscheck/device"
)

// buildGraph assembles the final labeled multigraph (spec §4.4): a node
// for every transistor (label N or P) and every still-visible net (label
// bus), an edge for every transistor-net terminal pair and every
// transistor-net gate pair. Nets absorbed by §4.4's merger rules are
// invisible and contribute no node.
func (c *Circuit) buildGraph() *circuitgraph.Graph {
	g := circuitgraph.New()

	for _, t := range c.Transistors {
		label := circuitgraph.LabelN
		if t.Kind == device.KindP {
			label = circuitgraph.LabelP
		}
		_ = g.AddNode(int(t.ID), transistorName(t), label)
	}
	for _, n := range c.Nets {
		if !n.Visible {
			continue
		}
		_ = g.AddNode(int(n.ID), n.Name, circuitgraph.LabelBus)
	}

	for _, t := range c.Transistors {
		for nid := range t.TerminalNets {
			if net := c.netByID(nid); net != nil && net.Visible {
				_, _ = g.AddEdge(int(t.ID), int(nid), circuitgraph.EdgeTerminal)
			}
		}
		for nid := range t.GateNets {
			if net := c.netByID(nid); net != nil && net.Visible {
				_, _ = g.AddEdge(int(t.ID), int(nid), circuitgraph.EdgeGate)
			}
		}
	}

	return g
}

func transistorName(t *device.Transistor) string {
	if t.GateName != "" {
		return t.GateName
	}

	return string(t.Kind)
}
