package trigon

import (
	"context"
	"testing"

	"github.com/go-trigon/trigon/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float32) []point.Point {
	return []point.Point{
		point.New(x0, y0),
		point.New(x1, y0),
		point.New(x1, y1),
		point.New(x0, y1),
	}
}

func TestTriangulatePolygonsWithEdgeSingleSquare(t *testing.T) {
	face, strokes, err := TriangulatePolygonsWithEdge(context.Background(), [][]point.Point{square(0, 0, 4, 4)})
	require.NoError(t, err)

	assert.Len(t, face.Triangles, 2)
	assert.Len(t, strokes, 1)
	assert.NotEmpty(t, strokes[0].Triangles)
}

func TestTriangulatePolygonsWithEdgeOuterWithHole(t *testing.T) {
	outer := square(0, 0, 10, 10)
	hole := square(3, 3, 6, 6)

	face, strokes, err := TriangulatePolygonsWithEdge(context.Background(), [][]point.Point{outer, hole})
	require.NoError(t, err)

	// The hole splits the square into two 6-vertex y-monotone polygons, each triangulating
	// into 4 triangles by the universal n-2 count.
	assert.Len(t, face.Triangles, 8)
	assert.Len(t, strokes, 2)
}

func TestTriangulatePolygonsWithEdgeRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	many := make([][]point.Point, 20)
	for i := range many {
		many[i] = square(float32(i)*10, 0, float32(i)*10+4, 4)
	}

	_, _, err := TriangulatePolygonsWithEdge(ctx, many)
	assert.Error(t, err)
}

func TestTriangulatePolygonsWithEdgeEmptyInput(t *testing.T) {
	face, strokes, err := TriangulatePolygonsWithEdge(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, face.Triangles)
	assert.Empty(t, strokes)
}
