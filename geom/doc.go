// Package geom is the geometry kernel of lvscheck.
//
// It works on closed, simple, integer-coordinate polygons on a
// fabrication grid. Every predicate is inclusive on the boundary unless
// documented otherwise: intersects requires a shared area, not merely a
// shared edge or vertex.
//
// Boolean operations (Intersection, Subtract, SplitByCut) are delegated to
// github.com/peterstace/simplefeatures/geom, a general planar-geometry
// library, rather than hand-rolled: the extractor invokes these predicates
// in the innermost loops of its scans and must never produce sliver
// polygons that fool downstream touching tests. A cheap axis-aligned
// bounding-box rejection runs ahead of the simplefeatures call in
// Intersects and Intersection, since the overwhelming majority of IC
// layout polygons are Manhattan rectangles and most candidate pairs in a
// layer scan don't even overlap. Subtract and SplitByCut call
// simplefeatures without that rejection.
package geom
