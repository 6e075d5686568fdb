package geom

import (
	"fmt"

	sf "github.com/peterstace/simplefeatures/geom"
)

// toSF converts our integer Polygon into a simplefeatures Polygon with a
// single exterior ring (lvscheck never constructs polygons with holes).
func toSF(p Polygon) (sf.Polygon, error) {
	coords := make([]float64, 0, (len(p.Vertices)+1)*2)
	for _, v := range p.Vertices {
		coords = append(coords, float64(v.X), float64(v.Y))
	}
	// Close the ring explicitly; simplefeatures requires first == last.
	coords = append(coords, float64(p.Vertices[0].X), float64(p.Vertices[0].Y))

	seq := sf.NewSequence(coords, sf.DimXY)
	ring, err := sf.NewLineString(seq)
	if err != nil {
		return sf.Polygon{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	poly, err := sf.NewPolygon([]sf.LineString{ring})
	if err != nil {
		return sf.Polygon{}, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}

	return poly, nil
}

// fromSF flattens any simplefeatures Geometry (Polygon, MultiPolygon, or a
// GeometryCollection produced by a degenerate intersection) into zero or
// more integer Polygons, rounding to the nearest grid point. Per spec
// §4.1, inputs here are always outputs of boolean ops over grid-integer
// inputs so rounding is exact, not lossy; it only guards against
// floating-point noise simplefeatures' internal DCEL may introduce.
// Degenerate (zero-area or fewer than 3 distinct vertices) rings are
// dropped.
func fromSF(g sf.Geometry) []Polygon {
	var out []Polygon

	var walk func(g sf.Geometry)
	walk = func(g sf.Geometry) {
		if g.IsEmpty() {
			return
		}
		switch g.Type() {
		case sf.TypePolygon:
			if poly := polygonFromSF(g.MustAsPolygon()); poly != nil {
				out = append(out, *poly)
			}
		case sf.TypeMultiPolygon:
			mp := g.MustAsMultiPolygon()
			for i := 0; i < mp.NumPolygons(); i++ {
				if poly := polygonFromSF(mp.PolygonN(i)); poly != nil {
					out = append(out, *poly)
				}
			}
		case sf.TypeGeometryCollection:
			gc := g.MustAsGeometryCollection()
			for i := 0; i < gc.NumGeometries(); i++ {
				walk(gc.GeometryN(i))
			}
		default:
			// Lines and points carry no area; not a valid extraction result.
		}
	}
	walk(g)

	return out
}

func polygonFromSF(p sf.Polygon) *Polygon {
	ring := p.ExteriorRing()
	seq := ring.Coordinates()
	n := seq.Length()
	if n == 0 {
		return nil
	}

	pts := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		xy := seq.GetXY(i)
		pts = append(pts, Point{X: round(xy.X), Y: round(xy.Y)})
	}
	// Drop the implicit closing vertex (first == last).
	if len(pts) > 1 && pts[0] == pts[len(pts)-1] {
		pts = pts[:len(pts)-1]
	}
	pts = dedupConsecutive(pts)
	if len(pts) < 3 {
		return nil // degenerate: removed per spec §4.1
	}

	return &Polygon{Vertices: pts}
}

func round(f float64) int {
	if f >= 0 {
		return int(f + 0.5)
	}

	return -int(-f + 0.5)
}

func dedupConsecutive(pts []Point) []Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			out = append(out, p)
		}
	}
	if len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}

	return out
}

// Intersects reports whether the closed regions of a and b share at
// least an area. A shared edge or vertex alone is not an intersection
// (spec §4.1): a line-touch produces a zero-area or lower-dimensional
// intersection result, which Intersects treats as false.
func Intersects(a, b Polygon) bool {
	if !bboxesOverlap(a, b) {
		return false
	}
	pieces := Intersection(a, b)

	return len(pieces) > 0
}

// Intersection returns the clipped region(s) shared by a and b; empty if
// disjoint or merely touching. May return several simple polygons when the
// regions overlap in disconnected pieces.
func Intersection(a, b Polygon) []Polygon {
	if !bboxesOverlap(a, b) {
		return nil
	}
	sfa, err := toSF(a)
	if err != nil {
		return nil
	}
	sfb, err := toSF(b)
	if err != nil {
		return nil
	}
	result, err := sf.Intersection(sfa.AsGeometry(), sfb.AsGeometry())
	if err != nil {
		return nil
	}

	return fromSF(result)
}

// Subtract returns a \ b. When b bisects a into two pieces -- the
// dominant case, a gate strip crossing an active-area rectangle -- the
// result has exactly two pieces.
func Subtract(a, b Polygon) []Polygon {
	sfa, err := toSF(a)
	if err != nil {
		return nil
	}
	sfb, err := toSF(b)
	if err != nil {
		return nil
	}
	result, err := sf.Difference(sfa.AsGeometry(), sfb.AsGeometry())
	if err != nil {
		return nil
	}

	return fromSF(result)
}

// SplitByCut splits a by a polygon cut that fully crosses it, returning
// (left, right) such that cut ∪ left ∪ right = a. The piece containing the
// lexicographically smaller vertex of a is called left (spec §4.1's
// stable tie-break convention -- see spec §9 on why this, not the
// original's iteration-order-dependent choice, is used).
//
// Returns ErrCutDoesNotCross if the subtraction does not yield exactly two
// pieces.
func SplitByCut(a, cut Polygon) (left, right Polygon, err error) {
	pieces := Subtract(a, cut)
	if len(pieces) != 2 {
		return Polygon{}, Polygon{}, ErrCutDoesNotCross
	}

	smallestOf := func(p Polygon) Point {
		best := p.Vertices[0]
		for _, v := range p.Vertices[1:] {
			if lexLess(v, best) {
				best = v
			}
		}

		return best
	}

	a0, a1 := smallestOf(pieces[0]), smallestOf(pieces[1])
	if lexLess(a0, a1) {
		return pieces[0], pieces[1], nil
	}

	return pieces[1], pieces[0], nil
}
