// Package layer is the layer store (spec §4.2): a name→polygon-set map
// with no other responsibility. add appends; Dedup reduces each layer to
// a set (no duplicate polygons, spec §3); Find looks a layer up by name.
package layer
