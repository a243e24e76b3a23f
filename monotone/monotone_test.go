package monotone

import (
	"testing"

	"github.com/go-trigon/trigon/point"
	"github.com/stretchr/testify/assert"
)

func TestTriangulateDiamond(t *testing.T) {
	bottom := point.New(0, -2)
	poly := &Polygon{
		Top:    point.New(0, 2),
		Left:   []point.Point{point.New(-2, 0)},
		Right:  []point.Point{point.New(2, 0)},
		Bottom: &bottom,
	}

	triangles := Triangulate(poly)
	assert.Len(t, triangles, 2)

	assert.Equal(t, point.NewPointTriangle(point.New(2, 0), point.New(0, 2), point.New(-2, 0)), triangles[0])
	assert.Equal(t, point.NewPointTriangle(point.New(-2, 0), point.New(2, 0), point.New(0, -2)), triangles[1])
}

func TestTriangulatePanicsOnUnfinishedPolygon(t *testing.T) {
	poly := &Polygon{
		Top:   point.New(0, 2),
		Left:  []point.Point{point.New(-2, 0)},
		Right: []point.Point{point.New(2, 0)},
	}
	assert.Panics(t, func() { Triangulate(poly) })
}

func TestTriangulatePentagonCount(t *testing.T) {
	// A y-monotone "house" shape: two vertices on the left chain, one on the right.
	bottom := point.New(0, -4)
	poly := &Polygon{
		Top:    point.New(0, 4),
		Left:   []point.Point{point.New(-3, 1), point.New(-2, -2)},
		Right:  []point.Point{point.New(3, 0)},
		Bottom: &bottom,
	}

	triangles := Triangulate(poly)
	// A simple polygon with n vertices triangulates into exactly n-2 triangles.
	assert.Len(t, triangles, 3)
}
