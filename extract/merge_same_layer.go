package extract

import "github.com/opencircuit/lvscheck/geom"

// mergeSameLayerNets is pass 5 (spec §4.3.5). Iteratively: if two nets on
// the same layer contain polygons that are equal or that intersect,
// replace them with their union. Runs to fixpoint.
//
// Grounded on original_source TopologicalCircuit.bus_connection, which
// restarts its scan from the front of the bus list on every merge; we use
// the equivalent "merge one pair, restart the scan" loop.
func (c *Circuit) mergeSameLayerNets() {
	for {
		if !c.mergeOneSameLayerPair() {
			return
		}
	}
}

// mergeOneSameLayerPair finds the first mergeable same-layer pair,
// unions it into the lower-indexed net, and reports whether a merge
// occurred.
func (c *Circuit) mergeOneSameLayerPair() bool {
	for i := 0; i < len(c.Nets); i++ {
		for j := i + 1; j < len(c.Nets); j++ {
			a, b := c.Nets[i], c.Nets[j]
			if a.Layer != b.Layer {
				continue
			}
			if !polygonSetsTouch(a.Polygons, b.Polygons) {
				continue
			}
			a.Polygons = append(a.Polygons, b.Polygons...)
			c.removeNet(b.ID)

			return true
		}
	}

	return false
}

// polygonSetsTouch reports whether any polygon of one list is equal to
// or intersects any polygon of the other.
func polygonSetsTouch(as, bs []geom.Polygon) bool {
	for _, p := range as {
		for _, q := range bs {
			if p.Equal(q) || geom.Intersects(p, q) {
				return true
			}
		}
	}

	return false
}
