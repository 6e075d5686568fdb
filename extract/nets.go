package extract

import "github.com/opencircuit/lvscheck/device"

// routingLayers is the fixed scan order for net discovery (spec §4.3.3),
// matching original_source's bus_finder call order M1, M2, SI.
var routingLayers = []string{"M1", "M2", "SI"}

// discoverNets is pass 3 (spec §4.3.3). For each routing layer, every
// polygon becomes a single-polygon net on that layer. See SPEC_FULL.md's
// Open Questions for why no polygon is excluded as "contact-sized": net
// discovery runs before contact<->net wiring, so a polygon shared between
// a net and a contact's enclosing record is unified correctly by contact
// absorption (§4.4) regardless.
func (c *Circuit) discoverNets() {
	for _, layerName := range routingLayers {
		l := c.Store.Find(layerName)
		if l == nil {
			continue
		}
		for _, p := range l.Polygons {
			n := device.NewNet(c.ids.Next(), layerName, layerName, p)
			c.Nets = append(c.Nets, n)
		}
	}
}
