package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var square = Polygon{
	{Lat: 0, Lon: 0},
	{Lat: 0, Lon: 10},
	{Lat: 10, Lon: 10},
	{Lat: 10, Lon: 0},
}

func TestPolygonContains(t *testing.T) {
	assert.True(t, square.Contains(Point{Lat: 5, Lon: 5}))
	assert.False(t, square.Contains(Point{Lat: 50, Lon: 50}))
	assert.False(t, square.Contains(Point{Lat: -1, Lon: 5}))
	assert.False(t, square.Contains(Point{Lat: 5, Lon: 11}))
}

func TestPolygonContainsDegenerate(t *testing.T) {
	assert.False(t, Polygon{}.Contains(Point{Lat: 0, Lon: 0}))
	assert.False(t, Polygon{{Lat: 0, Lon: 0}}.Contains(Point{Lat: 0, Lon: 0}))
	assert.False(t, Polygon{{Lat: 0, Lon: 0}, {Lat: 10, Lon: 10}}.Contains(Point{Lat: 5, Lon: 5}))
}

// Boundary points follow the reference ray-casting tie-break: lower/left
// edges count as inside, the far longitude edge does not. What matters is
// that the outcome is consistent, not which side an edge lands on.
func TestPolygonContainsBoundary(t *testing.T) {
	assert.True(t, square.Contains(Point{Lat: 0, Lon: 5}))
	assert.True(t, square.Contains(Point{Lat: 5, Lon: 0}))
	assert.False(t, square.Contains(Point{Lat: 5, Lon: 10}))
}

func TestPolygonImplicitClosure(t *testing.T) {
	closed := append(Polygon{}, square...)
	closed = append(closed, square[0]) // caller repeated the first point

	for _, p := range []Point{{Lat: 5, Lon: 5}, {Lat: 50, Lon: 50}, {Lat: 0, Lon: 5}} {
		assert.Equal(t, square.Contains(p), closed.Contains(p),
			"explicitly closed polygon must behave like the implicit one")
	}
}

func TestPolygonContainsConcave(t *testing.T) {
	// L-shape: the notch at the top right is outside
	lshape := Polygon{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 10},
		{Lat: 5, Lon: 10},
		{Lat: 5, Lon: 5},
		{Lat: 10, Lon: 5},
		{Lat: 10, Lon: 0},
	}

	assert.True(t, lshape.Contains(Point{Lat: 2, Lon: 8}))
	assert.True(t, lshape.Contains(Point{Lat: 8, Lon: 2}))
	assert.False(t, lshape.Contains(Point{Lat: 8, Lon: 8}))
}

func TestQueryOrderPreserving(t *testing.T) {
	geo := []GeoListing{
		{ID: 4, Point: Point{Lat: 9, Lon: 9}},
		{ID: 1, Point: Point{Lat: 5, Lon: 5}},
		{ID: 9, Point: Point{Lat: 50, Lon: 50}},
		{ID: 2, Point: Point{Lat: 1, Lon: 1}},
	}

	matches := Query(square, geo)
	require.Len(t, matches, 3)
	// input order, not resorted by distance or id
	assert.Equal(t, 4, matches[0].ID)
	assert.Equal(t, 1, matches[1].ID)
	assert.Equal(t, 2, matches[2].ID)
}

func TestQueryEmpty(t *testing.T) {
	assert.Empty(t, Query(square, nil))
	assert.Empty(t, Query(Polygon{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}, []GeoListing{
		{ID: 1, Point: Point{Lat: 0.5, Lon: 0.5}},
	}))
}
