package layer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opencircuit/lvscheck/geom"
	"github.com/opencircuit/lvscheck/layer"
)

func rect(x0, y0, x1, y1 int) geom.Polygon {
	p, err := geom.NewPolygon([]geom.Point{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}})
	if err != nil {
		panic(err)
	}

	return p
}

func TestStoreAddAndFind(t *testing.T) {
	s := layer.NewStore()
	s.Add("NA", rect(0, 0, 10, 10))
	require.NotNil(t, s.Find("NA"))
	assert.Len(t, s.Find("NA").Polygons, 1)
	assert.Nil(t, s.Find("M2"), "unreferenced layer must not appear")
}

func TestStoreDedupCollapsesDuplicates(t *testing.T) {
	s := layer.NewStore()
	s.Add("M1", rect(0, 0, 10, 10))
	s.Add("M1", rect(10, 0, 0, 10)) // same rectangle, vertices listed in reversed winding
	s.Add("M1", rect(20, 0, 30, 10))
	s.Dedup()
	assert.Len(t, s.Find("M1").Polygons, 2)
}

func TestStoreNamesPreservesFirstSeenOrder(t *testing.T) {
	s := layer.NewStore()
	s.Add("SI", rect(0, 0, 1, 1))
	s.Add("NA", rect(0, 0, 1, 1))
	s.Add("SI", rect(5, 5, 6, 6))
	assert.Equal(t, []string{"SI", "NA"}, s.Names())
}
