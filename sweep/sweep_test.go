package sweep

import (
	"testing"

	"github.com/go-trigon/trigon/monotone"
	"github.com/go-trigon/trigon/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamondEdges() []point.Segment {
	top := point.New(0, 2)
	right := point.New(2, 0)
	bottom := point.New(0, -2)
	left := point.New(-2, 0)
	return []point.Segment{
		point.NewSegment(top, right),
		point.NewSegment(right, bottom),
		point.NewSegment(bottom, left),
		point.NewSegment(left, top),
	}
}

func TestDecomposeDiamondProducesOneMonotonePolygon(t *testing.T) {
	polys := Decompose(diamondEdges(), 0)
	assert.Len(t, polys, 1)

	poly := polys[0]
	assert.Equal(t, point.New(0, 2), poly.Top)
	assert.NotNil(t, poly.Bottom)
	assert.Equal(t, point.New(0, -2), *poly.Bottom)
	assert.Equal(t, []point.Point{point.New(-2, 0)}, poly.Left)
	assert.Equal(t, []point.Point{point.New(2, 0)}, poly.Right)
}

func TestDecomposeThenTriangulateDiamond(t *testing.T) {
	polys := Decompose(diamondEdges(), 0)
	assert.Len(t, polys, 1)

	triangles := monotone.Triangulate(polys[0])
	assert.Len(t, triangles, 2)
}

func squareEdges(x0, y0, x1, y1 float32) []point.Segment {
	a := point.New(x0, y0)
	b := point.New(x1, y0)
	c := point.New(x1, y1)
	d := point.New(x0, y1)
	return []point.Segment{
		point.NewSegment(a, b),
		point.NewSegment(b, c),
		point.NewSegment(c, d),
		point.NewSegment(d, a),
	}
}

// shoelace2X returns twice the signed area of the polygon traced by a [monotone.Polygon]'s
// full boundary cycle (Top, down its Left chain, Bottom, back up its Right chain reversed).
func shoelace2X(poly *monotone.Polygon) float32 {
	var cycle []point.Point
	cycle = append(cycle, poly.Top)
	cycle = append(cycle, poly.Left...)
	cycle = append(cycle, *poly.Bottom)
	for i := len(poly.Right) - 1; i >= 0; i-- {
		cycle = append(cycle, poly.Right[i])
	}

	var sum float32
	n := len(cycle)
	for i := 0; i < n; i++ {
		a, b := cycle[i], cycle[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum
}

func TestDecomposeSquareWithHoleTilesExactly(t *testing.T) {
	// A hole strictly inside an outer square must decompose into two y-monotone polygons
	// that share two bridge diagonals and, between them, cover exactly the square-minus-hole
	// area, with no gap or overlap.
	outer := squareEdges(0, 0, 10, 10)
	hole := squareEdges(3, 3, 6, 6)

	edges := append(append([]point.Segment{}, outer...), hole...)
	polys := Decompose(edges, 0)
	assert.Len(t, polys, 2)

	var totalArea2X float32
	for _, p := range polys {
		require.NotNil(t, p.Bottom)
		totalArea2X += shoelace2X(p)
	}

	assert.InDelta(t, float32(2*(100-9)), totalArea2X, 0.01)
}

func TestOrderLeftRightEpsilonFoldsNearCollinearToFallback(t *testing.T) {
	// Two descending edges from p in almost the same direction: the two cross-product terms
	// of the orientation test are 1 and 1.0001, so at epsilon 0 the exact test would call
	// the pair CounterClockwise and put seg1 on the left. Within epsilon 0.001 the pair
	// counts as collinear and falls through to the x-coordinate fallback, which puts the
	// edge with the smaller far-endpoint x (seg2) on the left.
	p := point.New(0, 0)
	o1 := point.New(-1, -1)
	o2 := point.New(-2, -2.0001)
	seg1 := point.NewSegment(p, o1)
	seg2 := point.NewSegment(p, o2)

	left, right := orderLeftRight(p, o1, o2, seg1, seg2, 0.001)
	assert.True(t, left.Eq(seg2))
	assert.True(t, right.Eq(seg1))
}

func TestDecomposeSquareWithTiedTopEdgeIsNormalNotStart(t *testing.T) {
	// An axis-aligned square has two top corners at equal y. Per the sweep's descending
	// (y, x) event order, these are two distinct events processed right-to-left: the right
	// corner opens the interval as a Start, and the left corner is a Normal event at the
	// other end of the horizontal edge rather than a second Start.
	a := point.New(0, 2)
	b := point.New(2, 2)
	c := point.New(2, 0)
	d := point.New(0, 0)

	edges := []point.Segment{
		point.NewSegment(a, b),
		point.NewSegment(b, c),
		point.NewSegment(c, d),
		point.NewSegment(d, a),
	}

	polys := Decompose(edges, 0)
	assert.Len(t, polys, 1)

	triangles := monotone.Triangulate(polys[0])
	assert.Len(t, triangles, 2)
}
