// Package intersect implements pairwise and all-pairs segment intersection, the second
// component of the face-triangulation pipeline. It answers three related questions about
// a set of [point.Segment] values:
//
//   - Do two segments cross at all ([DoIntersect])?
//   - Where, precisely, do two segments meet ([FindIntersection])?
//   - Which pairs, among many segments, genuinely cross ([FindIntersections])?
//
// None of these results feed the face triangulator — C3/C6 work from the deduplicated
// edge set, not from intersection points, and no other package in this module calls into
// this one. They are exposed as a public package for callers, for example one preparing
// input paths who needs to know where two strokes would visually cross.
package intersect

import (
	"github.com/go-trigon/trigon/point"
	"github.com/go-trigon/trigon/types"
)

func isCollinear(o types.Orientation) bool {
	return o == types.Collinear
}

// OnSegmentIfCollinear reports whether q lies in the axis-aligned bounding box of p and
// r, assuming the three points are already known to be collinear. The convention is fixed
// by the second argument being the candidate point and the first and third being the
// segment endpoints — any test vector built on the reversed convention ("p is the
// candidate, q and r are the endpoints") is wrong, not a discovered variant.
func OnSegmentIfCollinear(p, q, r point.Point) bool {
	return q.X <= max(p.X, r.X) && q.X >= min(p.X, r.X) &&
		q.Y <= max(p.Y, r.Y) && q.Y >= min(p.Y, r.Y)
}

// DoIntersect reports whether two segments intersect, including the collinear-overlap
// case, using the standard four-orientation test with [OnSegmentIfCollinear] fallbacks
// for the degenerate collinear configurations.
func DoIntersect(s1, s2 point.Segment) bool {
	p1, q1 := s1.Bottom, s1.Top
	p2, q2 := s2.Bottom, s2.Top

	o1 := point.Orientation(p1, q1, p2)
	o2 := point.Orientation(p1, q1, q2)
	o3 := point.Orientation(p2, q2, p1)
	o4 := point.Orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if isCollinear(o1) && OnSegmentIfCollinear(p1, p2, q1) {
		return true
	}
	if isCollinear(o2) && OnSegmentIfCollinear(p1, q2, q1) {
		return true
	}
	if isCollinear(o3) && OnSegmentIfCollinear(p2, p1, q2) {
		return true
	}
	if isCollinear(o4) && OnSegmentIfCollinear(p2, q1, q2) {
		return true
	}

	return false
}

// ShareEndpoint reports whether s1 and s2 have an endpoint in common.
func ShareEndpoint(s1, s2 point.Segment) bool {
	return s1.Bottom.Eq(s2.Bottom) || s1.Bottom.Eq(s2.Top) ||
		s1.Top.Eq(s2.Bottom) || s1.Top.Eq(s2.Top)
}

func max(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
