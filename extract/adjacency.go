package extract

import (
	"github.com/opencircuit/lvscheck/device"
	"github.com/opencircuit/lvscheck/geom"
)

// synthesizeTransistorAdjacency is pass 8 (spec §4.3.8). For every
// unordered pair of transistors whose drain/source polygons directly
// touch without an intervening NA contact, synthesize a dummy NA net
// carrying that adjacency so the final graph stays connected across a
// shared-diffusion junction that never got a contact.
//
// Grounded on original_source TopologicalCircuit.trans_connection, which
// checks for an NA contact already bridging the pair before manufacturing
// a synthetic bus.
func (c *Circuit) synthesizeTransistorAdjacency() {
	for i := 0; i < len(c.Transistors); i++ {
		for j := i + 1; j < len(c.Transistors); j++ {
			t1, t2 := c.Transistors[i], c.Transistors[j]
			if c.sharesNAContact(t1.ID, t2.ID) {
				continue
			}
			if !geom.Intersects(t1.Drain, t2.Source) && !geom.Intersects(t1.Source, t2.Drain) {
				continue
			}

			n := device.NewNet(c.ids.Next(), "NA", "NA")
			c.Nets = append(c.Nets, n)
			t1.AddTerminalNet(n.ID)
			t2.AddTerminalNet(n.ID)
		}
	}
}

// sharesNAContact reports whether some NA-layer contact already has both
// transistors in its adjacency set.
func (c *Circuit) sharesNAContact(a, b device.ID) bool {
	for _, contact := range c.Contacts {
		if contact.Lower != "NA" {
			continue
		}
		_, hasA := contact.Adjacent[a]
		_, hasB := contact.Adjacent[b]
		if hasA && hasB {
			return true
		}
	}

	return false
}
