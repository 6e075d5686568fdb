package geom

import "errors"

// Sentinel errors for the geom package.
var (
	// ErrTooFewVertices indicates a polygon with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("geom: polygon has fewer than 3 vertices")

	// ErrDegenerate indicates a polygon with zero area or a self-touching
	// boundary that a geometry operation must discard rather than return.
	ErrDegenerate = errors.New("geom: degenerate polygon")

	// ErrCutDoesNotCross indicates SplitByCut was asked to split A by a cut
	// polygon that does not fully cross A into exactly two pieces.
	ErrCutDoesNotCross = errors.New("geom: cut polygon does not fully cross target")
)

// Point is an integer vertex on the fabrication grid.
type Point struct {
	X, Y int
}

// Polygon is a closed simple polygon: an ordered sequence of vertices,
// the last implicitly connected to the first. Two polygons are considered
// equal iff their vertex sequences are equal as unordered cyclic sets
// (see Equal).
type Polygon struct {
	Vertices []Point
}

// NewPolygon validates and returns a Polygon, or ErrTooFewVertices if
// fewer than 3 vertices are supplied.
func NewPolygon(vertices []Point) (Polygon, error) {
	if len(vertices) < 3 {
		return Polygon{}, ErrTooFewVertices
	}

	return Polygon{Vertices: append([]Point(nil), vertices...)}, nil
}

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p.Vertices) }

// bbox returns the axis-aligned bounding box of p.
func (p Polygon) bbox() (minX, minY, maxX, maxY int) {
	minX, minY = p.Vertices[0].X, p.Vertices[0].Y
	maxX, maxY = minX, minY
	for _, v := range p.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	return minX, minY, maxX, maxY
}

// bboxesOverlap is the cheap rejection test run before any simplefeatures call.
func bboxesOverlap(a, b Polygon) bool {
	aMinX, aMinY, aMaxX, aMaxY := a.bbox()
	bMinX, bMinY, bMaxX, bMaxY := b.bbox()

	return aMinX <= bMaxX && bMinX <= aMaxX && aMinY <= bMaxY && bMinY <= aMaxY
}

// lexLess orders points lexicographically by (X, Y), used for the
// drain/source tie-break (spec §9) and for canonicalizing vertex order
// before hashing.
func lexLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}

	return a.Y < b.Y
}
