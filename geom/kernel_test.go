package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/lvscheck/geom"
)

func rect(x0, y0, x1, y1 int) geom.Polygon {
	p, err := geom.NewPolygon([]geom.Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
	if err != nil {
		panic(err)
	}

	return p
}

func TestIntersectsDisjoint(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(20, 20, 30, 30)
	assert.False(t, geom.Intersects(a, b))
}

func TestIntersectsSharedEdgeOnly(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(10, 0, 20, 10)
	assert.False(t, geom.Intersects(a, b), "a shared edge alone is not an intersection")
}

func TestIntersectsOverlap(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(5, 5, 15, 15)
	assert.True(t, geom.Intersects(a, b))
}

func TestSubtractGateCrossingActiveArea(t *testing.T) {
	na := rect(0, 0, 100, 40)
	gate := rect(40, -10, 60, 50)
	pieces := geom.Subtract(na, gate)
	require.Len(t, pieces, 2, "gate strip crossing NA must split into exactly two pieces")
}

func TestSplitByCutTieBreak(t *testing.T) {
	na := rect(0, 0, 100, 40)
	gate := rect(40, -10, 60, 50)
	left, right, err := geom.SplitByCut(na, gate)
	require.NoError(t, err)
	assert.NotEqual(t, left, right)

	leftAgain, rightAgain, err := geom.SplitByCut(na, gate)
	require.NoError(t, err)
	assert.Equal(t, left, leftAgain, "tie-break must be stable across repeated calls")
	assert.Equal(t, right, rightAgain)
}

func TestPolygonEqualUnderRotationAndReflection(t *testing.T) {
	a, _ := geom.NewPolygon([]geom.Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	rotated, _ := geom.NewPolygon([]geom.Point{{10, 0}, {10, 10}, {0, 10}, {0, 0}})
	reflected, _ := geom.NewPolygon([]geom.Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}})
	assert.True(t, a.Equal(rotated))
	assert.True(t, a.Equal(reflected))
}

func TestPolygonNotEqualDifferentShape(t *testing.T) {
	a := rect(0, 0, 10, 10)
	b := rect(0, 0, 20, 10)
	assert.False(t, a.Equal(b))
}

func TestNewPolygonTooFewVertices(t *testing.T) {
	_, err := geom.NewPolygon([]geom.Point{{0, 0}, {1, 1}})
	assert.ErrorIs(t, err, geom.ErrTooFewVertices)
}
