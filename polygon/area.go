package polygon

import "github.com/go-trigon/trigon/point"

// Area2XSigned calculates twice the signed area of a simple polygon using the Shoelace
// Formula. The result is positive when points winds counterclockwise, negative when
// clockwise, and zero for fewer than three points or a degenerate (collinear) polygon.
//
// The input is assumed closed: the last point connects back to the first even if that
// edge is not explicit in the slice.
//
// Area2XSigned is exposed for testing the triangulation pipeline's area-sum property: the
// twice-signed area of a face triangulation's output triangles must sum to the twice-signed
// area of its source polygon.
func Area2XSigned(points []point.Point) float32 {
	n := len(points)
	if n < 3 {
		return 0
	}

	var area float32
	for i := 0; i < n; i++ {
		p1 := points[i]
		p2 := points[(i+1)%n]
		area += p1.X*p2.Y - p2.X*p1.Y
	}

	return area
}
