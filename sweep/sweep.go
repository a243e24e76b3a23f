// Package sweep implements the sweep-line decomposition of a set of deduplicated edges
// into y-monotone polygons (C6), the largest and most intricate component of the
// face-triangulation pipeline. It consumes the edge set [polygon.CalcDedupEdges] produces
// and hands finished [monotone.Polygon] values to package monotone for triangulation.
package sweep

import (
	"fmt"
	"sort"

	"github.com/go-trigon/trigon/monotone"
	"github.com/go-trigon/trigon/point"
	"github.com/go-trigon/trigon/types"
)

// Interval is a strip of the plane currently bounded on the left and right by two active
// edges, carrying one or more [monotone.Polygon] values being extended downward as the
// sweep descends. Intervals are always handled through a pointer so the two entries that
// key an Interval in segmentToInterval (one under its Left segment, one under its Right)
// never observe diverging copies.
type Interval struct {
	LastSeen point.Point
	Left     point.Segment
	Right    point.Segment
	Polygons []*monotone.Polygon
}

// incidence records one edge touching an event point: which segment it is, its other
// endpoint, and whether the edge descends from the event point (true) or ascends into it
// from above (false).
type incidence struct {
	segment    point.Segment
	opposite   point.Point
	descending bool
}

// Decompose sweeps edges top to bottom, classifying each endpoint as a Start, Split,
// Merge, Normal, End, or Intersection event, and returns every [monotone.Polygon] the
// sweep closes off.
//
// epsilon is the near-collinear tolerance applied when two descending (or ascending)
// edges share an event point and must be ordered left-to-right: floating-point error in
// that ordering's cross product can otherwise flip a genuinely collinear pair to a false
// winding. epsilon <= 0 keeps the bit-exact behavior.
//
// The event order is collected once and sorted by descending [point.Point] order up
// front — this is a one-shot sweep, not an incremental one: every event point is already
// known from the edge list, so a sorted slice serves where package intersect's all-pairs
// sweep keeps its (likewise fully pre-filled) events in a B-tree.
func Decompose(edges []point.Segment, epsilon float32) []*monotone.Polygon {
	pointToEdges := buildPointToEdges(edges)

	points := make([]point.Point, 0, len(pointToEdges))
	for p := range pointToEdges {
		points = append(points, p)
	}
	sort.Slice(points, func(i, j int) bool { return points[j].Less(points[i]) })

	segmentToInterval := make(map[point.Segment]*Interval)
	var active []*Interval
	var finished []*monotone.Polygon

	for _, p := range points {
		incidences := pointToEdges[p]

		var descending, ascending []incidence
		for _, inc := range incidences {
			if inc.descending {
				descending = append(descending, inc)
			} else {
				ascending = append(ascending, inc)
			}
		}

		switch {
		case len(incidences) == 2 && len(descending) == 2:
			handleStartOrSplit(p, descending, epsilon, segmentToInterval, &active, &finished)
		case len(incidences) == 2 && len(ascending) == 2:
			handleMergeOrEnd(p, ascending, segmentToInterval, &active, &finished)
		case len(incidences) == 2:
			handleNormal(p, ascending[0], descending[0], segmentToInterval)
		default:
			handleIntersection(p, incidences, epsilon, segmentToInterval, &active, &finished)
		}
	}

	return finished
}

func buildPointToEdges(edges []point.Segment) map[point.Point][]incidence {
	pointToEdges := make(map[point.Point][]incidence)
	for _, seg := range edges {
		pointToEdges[seg.Top] = append(pointToEdges[seg.Top], incidence{segment: seg, opposite: seg.Bottom, descending: true})
		pointToEdges[seg.Bottom] = append(pointToEdges[seg.Bottom], incidence{segment: seg, opposite: seg.Top, descending: false})
	}
	for p, incs := range pointToEdges {
		sort.Slice(incs, func(i, j int) bool { return incs[j].opposite.Less(incs[i].opposite) })
		pointToEdges[p] = incs
	}
	return pointToEdges
}

// orderLeftRight decides, for two segments sharing an endpoint at p, which is to the left
// and which to the right by the orientation of their other endpoints (o1, o2): the
// segment whose far endpoint makes a Clockwise turn from p is to the left. epsilon folds a
// near-collinear pair (see [point.OrientationWithEpsilon]) into the x-coordinate fallback
// below rather than letting floating-point error decide a false winding.
func orderLeftRight(p, o1, o2 point.Point, seg1, seg2 point.Segment, epsilon float32) (left, right point.Segment) {
	switch point.OrientationWithEpsilon(p, o1, o2, epsilon) {
	case types.Clockwise:
		return seg2, seg1
	case types.CounterClockwise:
		return seg1, seg2
	default:
		if o1.X <= o2.X {
			return seg1, seg2
		}
		return seg2, seg1
	}
}

// findContainingInterval returns the active Interval whose strip contains p at p's height,
// tested by a genuine containment scan (leftSegment.PointOnLineX(p.y) < p.x <
// rightSegment.PointOnLineX(p.y)) — not its negation.
func findContainingInterval(p point.Point, active []*Interval) *Interval {
	for _, iv := range active {
		lx := iv.Left.PointOnLineX(p.Y)
		rx := iv.Right.PointOnLineX(p.Y)
		if lx < p.X && p.X < rx {
			return iv
		}
	}
	return nil
}

func removeInterval(active *[]*Interval, target *Interval) {
	out := (*active)[:0]
	for _, iv := range *active {
		if iv != target {
			out = append(out, iv)
		}
	}
	*active = out
}

func handleStartOrSplit(
	p point.Point,
	descending []incidence,
	epsilon float32,
	segmentToInterval map[point.Segment]*Interval,
	active *[]*Interval,
	finished *[]*monotone.Polygon,
) {
	left, right := orderLeftRight(p, descending[0].opposite, descending[1].opposite, descending[0].segment, descending[1].segment, epsilon)

	containing := findContainingInterval(p, *active)
	if containing == nil {
		// Start event: open a fresh interval and polygon.
		iv := &Interval{LastSeen: p, Left: left, Right: right, Polygons: []*monotone.Polygon{{Top: p}}}
		segmentToInterval[left] = iv
		segmentToInterval[right] = iv
		*active = append(*active, iv)
		return
	}

	// Split event: p falls inside an existing interval. Narrow the containing interval so
	// its right boundary becomes the new left edge, and open a fresh interval for the gap
	// to its former right boundary.
	formerRight := containing.Right
	delete(segmentToInterval, formerRight)
	containing.Right = left
	containing.LastSeen = p
	segmentToInterval[left] = containing

	newIv := &Interval{LastSeen: p, Left: right, Right: formerRight}
	segmentToInterval[right] = newIv
	segmentToInterval[formerRight] = newIv
	*active = append(*active, newIv)

	switch len(containing.Polygons) {
	case 0:
		// Defensive: an active interval must always own at least one open polygon.
		panic(fmt.Errorf("sweep: interval at %s has no open polygon at split", p))
	case 1:
		// p is strictly interior to the strip: it is the topmost vertex of a new boundary
		// (a hole, or another component) appearing inside a region already being traced by
		// one polygon. Both halves produced by this split still emanate from that
		// polygon's existing Top by way of a shared bridge diagonal to p — so the new
		// polygon inherits the same Top rather than starting a fresh one at p.
		poly := containing.Polygons[0]
		poly.Right = append(poly.Right, p)
		newPoly := &monotone.Polygon{Top: poly.Top, Left: []point.Point{p}}
		containing.Polygons = []*monotone.Polygon{poly}
		newIv.Polygons = []*monotone.Polygon{newPoly}
	default:
		first := containing.Polygons[0]
		last := containing.Polygons[len(containing.Polygons)-1]
		middle := containing.Polygons[1 : len(containing.Polygons)-1]

		first.Right = append(first.Right, p)
		last.Left = append(last.Left, p)

		for _, mid := range middle {
			bottom := p
			mid.Bottom = &bottom
			*finished = append(*finished, mid)
		}

		containing.Polygons = []*monotone.Polygon{first}
		newIv.Polygons = []*monotone.Polygon{last}
	}
}

func handleMergeOrEnd(
	p point.Point,
	ascending []incidence,
	segmentToInterval map[point.Segment]*Interval,
	active *[]*Interval,
	finished *[]*monotone.Polygon,
) {
	segA := ascending[0].segment
	segB := ascending[1].segment

	ivA, okA := segmentToInterval[segA]
	ivB, okB := segmentToInterval[segB]
	if !okA || !okB {
		panic(fmt.Errorf("sweep: missing interval for incident segment at %s", p))
	}

	if ivA == ivB {
		// End event: both ascending edges already belong to the same interval.
		for _, poly := range ivA.Polygons {
			bottom := p
			poly.Bottom = &bottom
			*finished = append(*finished, poly)
		}
		delete(segmentToInterval, segA)
		delete(segmentToInterval, segB)
		removeInterval(active, ivA)
		return
	}

	// Merge event: identify which interval is to the left (bounded on the right by the
	// segment reaching p) and which is to the right (bounded on the left).
	var leftIv, rightIv *Interval
	var leftSeg, rightSeg point.Segment
	switch {
	case ivA.Right.Eq(segA):
		leftIv, rightIv = ivA, ivB
		leftSeg, rightSeg = segA, segB
	case ivB.Right.Eq(segB):
		leftIv, rightIv = ivB, ivA
		leftSeg, rightSeg = segB, segA
	default:
		panic(fmt.Errorf("sweep: merge at %s could not orient intervals", p))
	}

	delete(segmentToInterval, leftSeg)
	delete(segmentToInterval, rightSeg)
	removeInterval(active, leftIv)
	removeInterval(active, rightIv)

	leftLast := leftIv.Polygons[len(leftIv.Polygons)-1]
	rightFirst := rightIv.Polygons[0]
	leftLast.Right = append(leftLast.Right, p)
	rightFirst.Left = append(rightFirst.Left, p)

	// Any other polygons carried by leftIv or rightIv are not touched by this merge: they
	// still sit against the other (untouched, still-live) boundary of their original
	// interval, which merged now inherits unchanged. They stay open, in left-to-right
	// order, until a later Split pinches one off or the final End closes the whole
	// interval; a merge by itself never finalizes anything.
	merged := &Interval{
		LastSeen: p,
		Left:     leftIv.Left,
		Right:    rightIv.Right,
	}
	merged.Polygons = append(merged.Polygons, leftIv.Polygons[:len(leftIv.Polygons)-1]...)
	merged.Polygons = append(merged.Polygons, leftLast, rightFirst)
	merged.Polygons = append(merged.Polygons, rightIv.Polygons[1:]...)
	segmentToInterval[merged.Left] = merged
	segmentToInterval[merged.Right] = merged
	*active = append(*active, merged)
}

// handleNormal advances the one boundary segment (asc) that reaches p into its replacement
// (desc). An interval normally owns a single open polygon, but one that absorbed a Merge
// carries two — one growing against its Left boundary, one against its Right — kept in that
// left-to-right order for as long as the interval lives. A Normal event only ever touches
// one boundary, so it only ever extends the polygon on that side (Polygons[0] for Left,
// the last entry for Right); the polygon on the untouched side is left exactly as is, to be
// picked up by its own future event on its own boundary segment.
func handleNormal(
	p point.Point,
	asc, desc incidence,
	segmentToInterval map[point.Segment]*Interval,
) {
	iv, ok := segmentToInterval[asc.segment]
	if !ok {
		panic(fmt.Errorf("sweep: missing interval for normal event at %s", p))
	}

	delete(segmentToInterval, asc.segment)

	isLeft := iv.Left.Eq(asc.segment)
	if isLeft {
		iv.Left = desc.segment
	} else {
		iv.Right = desc.segment
	}
	segmentToInterval[desc.segment] = iv
	iv.LastSeen = p

	if len(iv.Polygons) == 0 {
		panic(fmt.Errorf("sweep: interval at %s has no open polygon at normal event", p))
	}

	if isLeft {
		iv.Polygons[0].Left = append(iv.Polygons[0].Left, p)
	} else {
		last := len(iv.Polygons) - 1
		iv.Polygons[last].Right = append(iv.Polygons[last].Right, p)
	}
}

// segmentIn reports whether seg is one of incs' segments.
func segmentIn(seg point.Segment, incs []incidence) bool {
	for _, inc := range incs {
		if inc.segment.Eq(seg) {
			return true
		}
	}
	return false
}

// handleIntersection processes an event point with more than two incident segments — a
// true crossing between edges of two different boundaries, or several polygons touching
// at one vertex. It follows the same sub-event order the simpler two-incidence cases
// above implement one at a time, just applied to every incidence at p together:
//
//  1. End: every active interval whose Left and Right boundary both terminate at p (both
//     appear among the ascending incidences) closes outright, the same as the
//     two-incidence End case.
//  2. Normal: of what's left, the first remaining ascending segment continues as an
//     interval's new Right boundary if it currently IS that interval's Right boundary
//     (first_top == interval.right), and symmetrically the last remaining ascending
//     segment continues as an interval's new Left boundary if it IS that interval's Left
//     boundary (last_top == interval.left) — each consuming the first (respectively last)
//     descending segment as its replacement, like the two-incidence Normal case.
//  3. Merge: any ascending segments still left over are handled in consecutive pairs as
//     Merge (or End) events.
//  4. Start/Split: any descending segments still left over are handled in consecutive
//     pairs as Start (or Split) events.
//
// "First", "last" and "consecutive" refer to the incidence order from buildPointToEdges,
// which is by far endpoint, highest first. The incidences are not re-sorted left to right
// here, so the first ascending segment is not necessarily the leftmost one.
func handleIntersection(
	p point.Point,
	incidences []incidence,
	epsilon float32,
	segmentToInterval map[point.Segment]*Interval,
	active *[]*Interval,
	finished *[]*monotone.Polygon,
) {
	var descending, ascending []incidence
	for _, inc := range incidences {
		if inc.descending {
			descending = append(descending, inc)
		} else {
			ascending = append(ascending, inc)
		}
	}

	seenInterval := make(map[*Interval]bool)
	consumed := make(map[point.Segment]bool)
	for _, inc := range ascending {
		iv, ok := segmentToInterval[inc.segment]
		if !ok || seenInterval[iv] {
			continue
		}
		seenInterval[iv] = true
		if segmentIn(iv.Left, ascending) && segmentIn(iv.Right, ascending) {
			for _, poly := range iv.Polygons {
				bottom := p
				poly.Bottom = &bottom
				*finished = append(*finished, poly)
			}
			delete(segmentToInterval, iv.Left)
			delete(segmentToInterval, iv.Right)
			removeInterval(active, iv)
			consumed[iv.Left] = true
			consumed[iv.Right] = true
		}
	}
	if len(consumed) > 0 {
		remaining := ascending[:0]
		for _, inc := range ascending {
			if !consumed[inc.segment] {
				remaining = append(remaining, inc)
			}
		}
		ascending = remaining
	}

	if len(ascending) > 0 && len(descending) > 0 {
		firstTop := ascending[0]
		if iv, ok := segmentToInterval[firstTop.segment]; ok && iv.Right.Eq(firstTop.segment) {
			handleNormal(p, firstTop, descending[0], segmentToInterval)
			ascending = ascending[1:]
			descending = descending[1:]
		}
	}
	if len(ascending) > 0 && len(descending) > 0 {
		lastTop := ascending[len(ascending)-1]
		if iv, ok := segmentToInterval[lastTop.segment]; ok && iv.Left.Eq(lastTop.segment) {
			handleNormal(p, lastTop, descending[len(descending)-1], segmentToInterval)
			ascending = ascending[:len(ascending)-1]
			descending = descending[:len(descending)-1]
		}
	}

	for len(ascending) >= 2 {
		pair := ascending[:2]
		ascending = ascending[2:]
		handleMergeOrEnd(p, pair, segmentToInterval, active, finished)
	}
	for len(descending) >= 2 {
		pair := descending[:2]
		descending = descending[2:]
		handleStartOrSplit(p, pair, epsilon, segmentToInterval, active, finished)
	}
}
