package extract

import "github.com/opencircuit/lvscheck/geom"

// wireContactsToNets is pass 6 (spec §4.3.6). For each contact and each
// net whose layer is either end of the contact's layer-pair, if any of
// the net's polygons intersects the contact polygon, record the net's id
// in the contact's adjacency set.
func (c *Circuit) wireContactsToNets() {
	for _, contact := range c.Contacts {
		for _, n := range c.Nets {
			if n.Layer != contact.Lower && n.Layer != contact.Upper {
				continue
			}
			if netPolygonsIntersect(n.Polygons, contact.Polygon) {
				contact.AddAdjacent(n.ID)
			}
		}
	}
}

// wireTransistorsToContacts is pass 7 (spec §4.3.7). For each contact on
// NA and each transistor, if either the transistor's drain or source
// polygon intersects the contact polygon, record the transistor's id in
// that contact's adjacency.
func (c *Circuit) wireTransistorsToContacts() {
	for _, contact := range c.Contacts {
		if contact.Lower != "NA" {
			continue
		}
		for _, t := range c.Transistors {
			if geom.Intersects(t.Drain, contact.Polygon) || geom.Intersects(t.Source, contact.Polygon) {
				contact.AddAdjacent(t.ID)
			}
		}
	}
}

func netPolygonsIntersect(polys []geom.Polygon, target geom.Polygon) bool {
	for _, p := range polys {
		if geom.Intersects(p, target) {
			return true
		}
	}

	return false
}
