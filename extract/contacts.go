package extract

import (
	"github.com/opencircuit/lvscheck/device"
	"github.com/opencircuit/lvscheck/geom"
)

// discoverContacts is pass 2 (spec §4.3.2). For each of the six contact
// families, for each contact polygon, find an enclosing polygon on
// EnclosingLayer that Intersects it, and a corresponding polygon on
// UpperLayer: strict identity (p == m) for ohmic-tap/inter-metal
// families, co-intersection (Intersects(m, p)) for the equipotential
// (well/substrate tap) families. Emits a contact record on the first
// satisfying m, per original_source's find_cont/find_cont_E break-on-first
// semantics.
//
// A family naming a layer absent from the store yields ErrInconsistentLayers
// (logged, spec §7): no contact is emitted for that family, and
// verification proceeds with the weakened graph.
func (c *Circuit) discoverContacts() {
	for _, family := range c.config.families {
		contactLayer := c.Store.Find(family.ContactLayer)
		enclosingLayer := c.Store.Find(family.EnclosingLayer)
		upperLayer := c.Store.Find(family.UpperLayer)
		if contactLayer == nil || enclosingLayer == nil || upperLayer == nil {
			c.log.V(1).Info("skipping contact family: layer not present",
				"family", family.Name, "err", ErrInconsistentLayers)
			continue
		}

		for _, contact := range contactLayer.Polygons {
			for _, enclosing := range enclosingLayer.Polygons {
				if !geom.Intersects(contact, enclosing) {
					continue
				}
				if hasUpperMatch(family, enclosing, upperLayer.Polygons) {
					ct := device.NewContact(c.ids.Next(), family.Name, family.EnclosingLayer, family.UpperLayer, contact, enclosing)
					c.Contacts = append(c.Contacts, ct)

					break // first satisfying m, per original_source
				}
			}
		}
	}
}

// hasUpperMatch reports whether some upper-layer polygon satisfies the
// family's rule against enclosing.
func hasUpperMatch(family device.ContactFamily, enclosing geom.Polygon, upperPolys []geom.Polygon) bool {
	for _, m := range upperPolys {
		if family.Equipotential {
			if geom.Intersects(m, enclosing) {
				return true
			}
		} else if enclosing.Equal(m) {
			return true
		}
	}

	return false
}
