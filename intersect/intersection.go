package intersect

import (
	"sort"

	"github.com/go-trigon/trigon/point"
	"github.com/go-trigon/trigon/types"
)

// Intersection is the result of [FindIntersection]: a [types.IntersectionKind] plus the
// points that witness it (empty for NoIntersection and CollinearNoOverlap, one point for
// PointIntersection, one or two deduplicated points for CollinearWithOverlap).
type Intersection struct {
	Kind   types.IntersectionKind
	Points []point.Point
}

// FindIntersection computes how two segments meet.
//
// When the segments are not parallel, the unique crossing point of their supporting lines
// is computed and clamped onto s1 if the parametric solution falls slightly outside
// [0,1] — a floating-point precision safety net, not a geometric rule: a clean crossing
// never needs it.
//
// When the segments are parallel (the determinant of their direction vectors is zero),
// s2.Bottom is first tested against s1's infinite supporting line: if it doesn't lie on
// that line, the segments are merely parallel and share no point ([types.NoIntersection]).
// Only once the lines are confirmed to be the same line are the segments tested for
// collinear overlap, by checking each segment's endpoints against the other's bounding
// interval; the result carries the deduplicated, sorted set of shared boundary points (0,
// 1, or 2 of them).
func FindIntersection(s1, s2 point.Segment) Intersection {
	a1 := s1.Top.Y - s1.Bottom.Y
	b1 := s1.Bottom.X - s1.Top.X
	a2 := s2.Top.Y - s2.Bottom.Y
	b2 := s2.Bottom.X - s2.Top.X
	det := a1*b2 - a2*b1

	if det == 0 {
		if point.Orientation(s1.Bottom, s1.Top, s2.Bottom) != types.Collinear {
			return Intersection{Kind: types.NoIntersection}
		}
		return findCollinearIntersection(s1, s2)
	}

	t := ((s2.Top.X-s1.Top.X)*(s2.Bottom.Y-s2.Top.Y) - (s2.Top.Y-s1.Top.Y)*(s2.Bottom.X-s2.Top.X)) / det

	switch {
	case t < 0:
		return Intersection{Kind: types.PointIntersection, Points: []point.Point{s1.Top}}
	case t > 1:
		return Intersection{Kind: types.PointIntersection, Points: []point.Point{s1.Bottom}}
	default:
		x := s1.Top.X + t*b1
		y := s1.Top.Y + t*(-a1)
		return Intersection{Kind: types.PointIntersection, Points: []point.Point{point.New(x, y)}}
	}
}

func findCollinearIntersection(s1, s2 point.Segment) Intersection {
	var res []point.Point
	if s1.PointOnLine(s2.Bottom) {
		res = append(res, s2.Bottom)
	}
	if s1.PointOnLine(s2.Top) {
		res = append(res, s2.Top)
	}
	if s2.PointOnLine(s1.Bottom) {
		res = append(res, s1.Bottom)
	}
	if s2.PointOnLine(s1.Top) {
		res = append(res, s1.Top)
	}

	res = dedupSortedPoints(res)
	if len(res) == 0 {
		return Intersection{Kind: types.CollinearNoOverlap}
	}
	return Intersection{Kind: types.CollinearWithOverlap, Points: res}
}

func dedupSortedPoints(pts []point.Point) []point.Point {
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || !p.Eq(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}
