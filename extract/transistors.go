package extract

import (
	"fmt"

	"github.com/opencircuit/lvscheck/device"
	"github.com/opencircuit/lvscheck/geom"
)

// discoverTransistors is pass 1 (spec §4.3.1). For each gate-material
// layer (SN for n-channel, SP for p-channel), for each gate polygon, scan
// active-area polygons. A real 2-D overlap (not a mere line-touch) means
// the gate crosses the active area: the NA polygon is replaced in-place
// by the two pieces geom.SplitByCut produces, and a transistor is emitted
// with that gate/drain/source.
//
// Grounded on original_source TopologicalCircuit.transistor_finder, which
// runs the SN pass then the SP pass in sequence; we do the same.
func (c *Circuit) discoverTransistors() {
	c.discoverTransistorsForGateLayer("SN", device.KindN)
	c.discoverTransistorsForGateLayer("SP", device.KindP)
}

func (c *Circuit) discoverTransistorsForGateLayer(gateLayer string, kind device.Kind) {
	gl := c.Store.Find(gateLayer)
	na := c.Store.Find("NA")
	if gl == nil || na == nil {
		return
	}

	// NA polygons are replaced as gates are discovered to cross them; copy
	// the slice up front so a split mid-loop doesn't perturb the active
	// scan, then write the final NA set back at the end of the pass.
	currentNA := append([]geom.Polygon(nil), na.Polygons...)

	for _, g := range gl.Polygons {
		for i := 0; i < len(currentNA); i++ {
			a := currentNA[i]
			overlap := geom.Intersection(g, a)
			if !isRealOverlap(overlap) {
				continue
			}

			drain, source, err := geom.SplitByCut(a, g)
			if err != nil {
				err = fmt.Errorf("%w: %v", ErrDegenerateSplit, err)
				c.log.V(1).Info("skipping candidate transistor: degenerate split",
					"gate_layer", gateLayer, "err", err)
				continue
			}

			t := device.NewTransistor(c.ids.Next(), kind)
			t.Gate, t.Drain, t.Source = g, drain, source
			c.Transistors = append(c.Transistors, t)

			// Replace a with its two pieces in the running NA set.
			currentNA = append(currentNA[:i], currentNA[i+1:]...)
			currentNA = append(currentNA, drain, source)
			i-- // re-examine the slot that now holds what was previously next
		}
	}

	c.Store.ReplacePolygons("NA", currentNA)
}

// isRealOverlap reports whether an intersection result is a genuine 2-D
// overlap (bounded by more than two vertices, spec §4.3.1) rather than a
// degenerate line-touch. geom.Intersection already removes zero-area
// slivers, so any returned piece with at least 3 vertices qualifies.
func isRealOverlap(pieces []geom.Polygon) bool {
	for _, p := range pieces {
		if p.Len() > 2 {
			return true
		}
	}

	return false
}
