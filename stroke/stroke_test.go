package stroke

import (
	"testing"

	"github.com/go-trigon/trigon/options"
	"github.com/go-trigon/trigon/point"
	"github.com/stretchr/testify/assert"
)

func TestTriangulatePathEdgeDegenerateEmpty(t *testing.T) {
	centers, offsets, triangles := TriangulatePathEdge(nil, false)
	assert.Empty(t, centers)
	assert.Empty(t, offsets)
	assert.NotNil(t, triangles)

	centers, offsets, triangles = TriangulatePathEdge([]point.Point{point.New(0, 0)}, false)
	assert.Empty(t, centers)
	assert.Empty(t, offsets)
	assert.Empty(t, triangles)
}

func TestTriangulatePathEdgeTwoPointPath(t *testing.T) {
	path := []point.Point{point.New(0, 0), point.New(4, 0)}
	centers, offsets, triangles := TriangulatePathEdge(path, false)

	assert.Len(t, centers, 4)
	assert.Len(t, offsets, 4)
	assert.Len(t, triangles, 2)
}

func TestTriangulatePathEdgeStraightLineNoBevel(t *testing.T) {
	// Three collinear points: the interior vertex has a straight miter join (scale 1, no
	// bevel needed regardless of the miter limit).
	path := []point.Point{point.New(0, 0), point.New(2, 0), point.New(4, 0)}
	_, offsets, triangles := TriangulatePathEdge(path, false)

	assert.Len(t, offsets, 6)
	assert.Len(t, triangles, 4)
}

func TestTriangulatePathEdgeSharpTurnForcesBevel(t *testing.T) {
	// A near-reversal turn at the middle vertex: the miter scale blows up, so with a miter
	// limit of 2 the join must bevel (more than 2 vertices emitted there).
	path := []point.Point{point.New(0, 0), point.New(4, 0), point.New(0, 0.2)}
	_, offsets, _ := TriangulatePathEdge(path, false, options.WithMiterLimit(2))

	// 2 (start) + 4 (beveled interior joint) + 2 (end) = 8
	assert.Len(t, offsets, 8)
}

func TestTriangulatePathEdgeForceBevelOption(t *testing.T) {
	path := []point.Point{point.New(0, 0), point.New(4, 0), point.New(8, 1)}
	_, offsetsMiter, _ := TriangulatePathEdge(path, false)
	_, offsetsBevel, _ := TriangulatePathEdge(path, false, options.WithBevel(true))

	assert.Greater(t, len(offsetsBevel), len(offsetsMiter))
}

func TestTriangulatePathEdgeClosedSquare(t *testing.T) {
	path := []point.Point{
		point.New(0, 0), point.New(4, 0), point.New(4, 4), point.New(0, 4),
	}
	centers, offsets, triangles := TriangulatePathEdge(path, true)

	assert.Len(t, centers, 8)
	assert.Len(t, offsets, 8)
	assert.Len(t, triangles, 8)
}

func TestTriangulatePathEdgeSkipsConsecutiveDuplicates(t *testing.T) {
	path := []point.Point{point.New(0, 0), point.New(0, 0), point.New(4, 0)}
	centers, _, _ := TriangulatePathEdge(path, false)
	assert.Len(t, centers, 4)
}
