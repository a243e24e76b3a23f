package point

import (
	"fmt"

	"github.com/go-trigon/trigon/types"
)

// Segment is a straight line segment between two distinct points, canonicalized so that
// Bottom is always less than Top in the (y, x) lexicographic [Point] order. This
// canonicalization is what lets Segment(A, B) and Segment(B, A) compare and hash equal,
// which in turn is what makes the edge deduplication in the polygon package a correct
// symmetric difference: the same undirected edge walked in either direction collapses to
// one Segment value.
type Segment struct {
	Bottom, Top Point
}

// NewSegment constructs a Segment between p1 and p2, canonicalizing their order.
//
// Panics:
//   - If p1 and p2 are equal. A degenerate segment is a precondition violation, not a
//     recoverable input — callers must filter duplicate consecutive points before
//     constructing segments from a path or polygon boundary.
func NewSegment(p1, p2 Point) Segment {
	if p1.Eq(p2) {
		panic(fmt.Errorf("point: segment cannot have two identical points: %s", p1))
	}
	if p1.Less(p2) {
		return Segment{Bottom: p1, Top: p2}
	}
	return Segment{Bottom: p2, Top: p1}
}

// Eq reports whether two segments share the same canonical endpoints.
func (s Segment) Eq(o Segment) bool {
	return s.Bottom.Eq(o.Bottom) && s.Top.Eq(o.Top)
}

// IsHorizontal reports whether the segment's two endpoints share a y-coordinate.
func (s Segment) IsHorizontal() bool {
	return s.Bottom.Y == s.Top.Y
}

// IsVertical reports whether the segment's two endpoints share an x-coordinate.
func (s Segment) IsVertical() bool {
	return s.Bottom.X == s.Top.X
}

// PointOnLineX returns the x-coordinate of the segment's infinite supporting line at
// height y. For a horizontal segment (where the line itself is undefined), it returns
// Bottom.X.
func (s Segment) PointOnLineX(y float32) float32 {
	if s.IsHorizontal() {
		return s.Bottom.X
	}
	return s.Bottom.X + (y-s.Bottom.Y)*((s.Top.X-s.Bottom.X)/(s.Top.Y-s.Bottom.Y))
}

// PointOnLine reports whether p lies within the segment's bounding interval and on its
// supporting line.
func (s Segment) PointOnLine(p Point) bool {
	switch {
	case s.IsHorizontal():
		return p.Y == s.Bottom.Y && s.Bottom.X <= p.X && p.X <= s.Top.X
	case s.IsVertical():
		return p.X == s.Bottom.X && s.Bottom.Y <= p.Y && p.Y <= s.Top.Y
	default:
		minX, maxX := min(s.Bottom.X, s.Top.X), max(s.Bottom.X, s.Top.X)
		return s.Bottom.Y <= p.Y && p.Y <= s.Top.Y && minX <= p.X && p.X <= maxX &&
			Orientation(s.Bottom, s.Top, p) == types.Collinear
	}
}

// String returns a human-readable representation of the segment.
func (s Segment) String() string {
	return fmt.Sprintf("[bottom=%s, top=%s]", s.Bottom, s.Top)
}
