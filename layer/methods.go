package layer

import (
	"github.com/mpvl/unique"

	"github.com/opencircuit/lvscheck/geom"
)

// hashedPolygon pairs a polygon with its fast dedup key so that sorting
// and duplicate-collapsing only ever compares uint64s, falling back to
// geom.Polygon.Equal only to break ties within an equal-hash run.
type hashedPolygon struct {
	hash uint64
	poly geom.Polygon
}

// hashedPolygons implements unique.Interface (sort.Interface + Truncate),
// letting github.com/mpvl/unique collapse adjacent duplicates in place
// after sorting -- the same dedup idiom cue-lang-cue uses for module
// version lists.
type hashedPolygons []hashedPolygon

func (h hashedPolygons) Len() int      { return len(h) }
func (h hashedPolygons) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h hashedPolygons) Less(i, j int) bool {
	if h[i].hash != h[j].hash {
		return h[i].hash < h[j].hash
	}
	// Break hash ties by vertex count, then lexicographically by the
	// vertex sequence as stored, so Equal polygons sort adjacent and
	// non-Equal same-hash polygons don't get silently merged.
	if len(h[i].poly.Vertices) != len(h[j].poly.Vertices) {
		return len(h[i].poly.Vertices) < len(h[j].poly.Vertices)
	}

	return !h[i].poly.Equal(h[j].poly) && polygonLess(h[i].poly, h[j].poly)
}
func (h *hashedPolygons) Truncate(n int) { *h = (*h)[:n] }

func polygonLess(a, b geom.Polygon) bool {
	for i := range a.Vertices {
		if i >= len(b.Vertices) {
			return false
		}
		if a.Vertices[i] != b.Vertices[i] {
			return a.Vertices[i].X < b.Vertices[i].X ||
				(a.Vertices[i].X == b.Vertices[i].X && a.Vertices[i].Y < b.Vertices[i].Y)
		}
	}

	return false
}

// Dedup reduces every layer in s to a set: duplicate polygons (equal as
// unordered cyclic vertex sets, spec §3) are collapsed to one. It must be
// called once after all Add calls for a layer complete and before any
// extraction pass reads the store.
//
// Complexity: O(n log n) per layer via sort + mpvl/unique collapse,
// versus the O(n²) of a naive all-pairs Equal scan.
func (s *Store) Dedup() {
	for _, name := range s.order {
		l := s.layers[name]
		if len(l.Polygons) < 2 {
			continue
		}
		hp := make(hashedPolygons, len(l.Polygons))
		for i, p := range l.Polygons {
			hp[i] = hashedPolygon{hash: geom.Hash(p), poly: p}
		}
		unique.Sort(&hp) // sorts hp then truncates adjacent duplicates away

		deduped := make([]geom.Polygon, len(hp))
		for i, entry := range hp {
			deduped[i] = entry.poly
		}
		l.Polygons = deduped
	}
}
