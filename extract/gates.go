package extract

import (
	"github.com/opencircuit/lvscheck/device"
	"github.com/opencircuit/lvscheck/geom"
)

// touches reports whether any polygon in n's polygon list shares area
// with p, i.e. the polysilicon routing net physically reaches the gate.
func touches(n *device.Net, p geom.Polygon) bool {
	for _, q := range n.Polygons {
		if geom.Intersects(q, p) {
			return true
		}
	}

	return false
}

// unifyGateNets is pass 4 (spec §4.3.4). For every transistor, find the
// SI-layer nets whose polygons touch its gate polygon and attach the gate
// polygon into the first; if several SI nets touch the same gate, unite
// them into that one and drop the rest from c.Nets (this runs before any
// net is final, so removing an absorbed net outright -- rather than
// marking it invisible, the §4.4 mechanism for the already-built graph --
// is both correct and simpler).
func (c *Circuit) unifyGateNets() {
	for _, t := range c.Transistors {
		var matched []*device.Net
		for _, n := range c.Nets {
			if n.Layer != "SI" {
				continue
			}
			if touches(n, t.Gate) {
				matched = append(matched, n)
			}
		}
		if len(matched) == 0 {
			continue
		}

		keeper := matched[0]
		for _, other := range matched[1:] {
			keeper.Polygons = append(keeper.Polygons, other.Polygons...)
			c.removeNet(other.ID)
		}
		keeper.Polygons = append(keeper.Polygons, t.Gate)
	}
}

// removeNet deletes the net with the given id from c.Nets.
func (c *Circuit) removeNet(id device.ID) {
	for i, n := range c.Nets {
		if n.ID == id {
			c.Nets = append(c.Nets[:i], c.Nets[i+1:]...)

			return
		}
	}
}

// wireGateEdges is pass 9 (spec §4.3.9). For every transistor, for every
// SI net whose polygons contain or intersect the gate polygon, add that
// net's id to the transistor's GateNets. Runs after same-layer merging and
// adjacency synthesis so it sees the stabilized net set.
func (c *Circuit) wireGateEdges() {
	for _, t := range c.Transistors {
		for _, n := range c.Nets {
			if n.Layer != "SI" {
				continue
			}
			if touches(n, t.Gate) {
				t.AddGateNet(n.ID)
			}
		}
	}
}
