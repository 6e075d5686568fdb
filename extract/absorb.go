package extract

import "github.com/opencircuit/lvscheck/device"

// absorbContacts is net-merger rule 1 (spec §4.4): for each contact,
// every net listed in its adjacency becomes mutually adjacent to every
// other net entry (the contact is a clique-maker), and every transistor
// entry gets that contact's net entries added to its terminal-net set.
// The contact itself never becomes a graph node.
func (c *Circuit) absorbContacts() {
	for _, contact := range c.Contacts {
		var netIDs, transIDs []device.ID
		for id := range contact.Adjacent {
			switch {
			case c.netByID(id) != nil:
				netIDs = append(netIDs, id)
			case c.transistorByID(id) != nil:
				transIDs = append(transIDs, id)
			}
		}

		for i, a := range netIDs {
			for j, b := range netIDs {
				if i == j {
					continue
				}
				c.netByID(a).AddGraphConnection(b)
			}
		}
		for _, nid := range netIDs {
			for _, tid := range transIDs {
				c.transistorByID(tid).AddTerminalNet(nid)
			}
		}
	}

	removeSelfLoops(c.Nets)
}

// absorbM2 is net-merger rule 2 (spec §4.4): an M2 net absorbs the
// graph-adjacencies of every net it already touches (i.e. is already
// adjacent to via contact absorption); the absorbed net becomes invisible
// and every reference to it is rewritten to the M2 net.
func (c *Circuit) absorbM2() {
	for _, m2 := range c.Nets {
		if m2.Layer != "M2" || !m2.Visible {
			continue
		}
		for _, n := range c.Nets {
			if n == m2 || !n.Visible {
				continue
			}
			if adjacent(m2, n.ID) || adjacent(n, m2.ID) {
				c.absorbNet(m2, n)
			}
		}
	}

	removeSelfLoops(c.Nets)
}

// absorbSI is net-merger rule 3 (spec §4.4): symmetric to rule 2, but for
// SI nets that serve as some transistor's gate net (touched via a gate
// edge) rather than unconditionally for the whole layer.
func (c *Circuit) absorbSI() {
	for _, si := range c.Nets {
		if si.Layer != "SI" || !si.Visible || !c.isAnyGateNet(si.ID) {
			continue
		}
		for _, n := range c.Nets {
			if n == si || !n.Visible {
				continue
			}
			if adjacent(si, n.ID) || adjacent(n, si.ID) {
				c.absorbNet(si, n)
			}
		}
	}

	removeSelfLoops(c.Nets)
}

func (c *Circuit) isAnyGateNet(id device.ID) bool {
	for _, t := range c.Transistors {
		if _, ok := t.GateNets[id]; ok {
			return true
		}
	}

	return false
}

func adjacent(n *device.Net, id device.ID) bool {
	_, ok := n.GraphConnections[id]

	return ok
}

// absorbNet merges absorbed into target: target inherits absorbed's
// neighbors, every other net's reference to absorbed is rewritten to
// target, every transistor's gate/terminal reference to absorbed is
// rewritten to target, and absorbed is marked invisible (terminal, spec
// §3).
func (c *Circuit) absorbNet(target, absorbed *device.Net) {
	if target == absorbed || !absorbed.Visible {
		return
	}

	for nbr := range absorbed.GraphConnections {
		if nbr != target.ID {
			target.AddGraphConnection(nbr)
		}
	}
	delete(target.GraphConnections, absorbed.ID)

	for _, n := range c.Nets {
		if n == target || n == absorbed {
			continue
		}
		if _, ok := n.GraphConnections[absorbed.ID]; ok {
			delete(n.GraphConnections, absorbed.ID)
			n.AddGraphConnection(target.ID)
			target.AddGraphConnection(n.ID)
		}
	}

	for _, t := range c.Transistors {
		if _, ok := t.GateNets[absorbed.ID]; ok {
			delete(t.GateNets, absorbed.ID)
			t.AddGateNet(target.ID)
		}
		if _, ok := t.TerminalNets[absorbed.ID]; ok {
			delete(t.TerminalNets, absorbed.ID)
			t.AddTerminalNet(target.ID)
		}
	}

	absorbed.Visible = false
}

// removeSelfLoops drops any net's reference to itself in its own
// GraphConnections, per spec §4.4 "self-loops are removed after each
// rule".
func removeSelfLoops(nets []*device.Net) {
	for _, n := range nets {
		delete(n.GraphConnections, n.ID)
	}
}
