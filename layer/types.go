package layer

import "github.com/opencircuit/lvscheck/geom"

// Layer is a named bucket holding a deduplicated set of polygons.
type Layer struct {
	Name     string
	Polygons []geom.Polygon
}

// Store is a name→Layer map. It is the sole input to the layout
// extractor (spec §4.3): every pass reads Store and never mutates a
// Layer's Polygons slice concurrently with another pass, since extraction
// runs its passes in a fixed deterministic order (spec §5).
type Store struct {
	layers map[string]*Layer
	order  []string // first-seen order, for deterministic iteration
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{layers: make(map[string]*Layer)}
}

// Add appends polygon to the named layer, creating the layer on first use.
// Duplicates are not filtered here; call Dedup once all polygons for a
// layer have been added.
func (s *Store) Add(layerName string, p geom.Polygon) {
	l, ok := s.layers[layerName]
	if !ok {
		l = &Layer{Name: layerName}
		s.layers[layerName] = l
		s.order = append(s.order, layerName)
	}
	l.Polygons = append(l.Polygons, p)
}

// Find returns the layer with the given name, or nil if it does not
// exist (spec §7 InconsistentLayers: callers must treat a nil return as
// "skip this record, weaken the graph" rather than an error).
func (s *Store) Find(layerName string) *Layer {
	return s.layers[layerName]
}

// Names returns the layer names in first-seen order.
func (s *Store) Names() []string {
	return append([]string(nil), s.order...)
}

// ReplacePolygons overwrites a layer's polygon list. Used by the extractor
// (spec §4.3.1) when a gate crossing splits an NA polygon into two pieces
// that must replace the original in-place.
func (s *Store) ReplacePolygons(layerName string, polys []geom.Polygon) {
	l, ok := s.layers[layerName]
	if !ok {
		l = &Layer{Name: layerName}
		s.layers[layerName] = l
		s.order = append(s.order, layerName)
	}
	l.Polygons = polys
}
