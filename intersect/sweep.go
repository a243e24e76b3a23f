package intersect

import (
	"github.com/go-trigon/trigon/point"
	"github.com/google/btree"
)

// OrderedPair is an unordered pair of segment indices, normalized so that the smaller
// index is always first. It is the key type [FindIntersections] returns, ensuring each
// crossing pair is reported exactly once regardless of which segment was discovered
// first.
type OrderedPair struct {
	A, B int
}

// NewOrderedPair builds an [OrderedPair] from two segment indices in either order.
func NewOrderedPair(i, j int) OrderedPair {
	if i <= j {
		return OrderedPair{A: i, B: j}
	}
	return OrderedPair{A: j, B: i}
}

// eventData collects, for one event Point, the indices of segments that have it as their
// Top ("tops") and those that have it as their Bottom ("bottoms").
type eventData struct {
	point   point.Point
	tops    []int
	bottoms []int
}

func eventLess(a, b *eventData) bool {
	return a.point.Less(b.point)
}

// FindIntersections finds every pair of segments that genuinely cross — [DoIntersect] is
// true and they do not merely [ShareEndpoint] — among an arbitrary set of segments.
//
// The sweep walks event points from highest to lowest using the (y, x) lexicographic
// [point.Point] order, maintained here with a [github.com/google/btree.BTreeG] of
// per-point event buckets: at each event, any segment newly entering at its top is tested
// against every segment currently active (whose top has been seen but whose bottom has
// not); segments leave the active set once their bottom event is processed. This mirrors
// the ordered event-queue idiom the host codebase's own line-segment sweep uses, though
// here the active-set scan itself stays a deliberate O(n·k) linear scan rather than a
// second balanced structure — the data model intentionally keeps that part simple.
func FindIntersections(segments []point.Segment) map[OrderedPair]struct{} {
	events := btree.NewG(32, eventLess)

	get := func(p point.Point) *eventData {
		if item, ok := events.Get(&eventData{point: p}); ok {
			return item
		}
		ed := &eventData{point: p}
		events.ReplaceOrInsert(ed)
		return ed
	}

	for i, seg := range segments {
		top := get(seg.Top)
		top.tops = append(top.tops, i)
		bottom := get(seg.Bottom)
		bottom.bottoms = append(bottom.bottoms, i)
	}

	intersections := make(map[OrderedPair]struct{})
	active := make(map[int]struct{})

	for events.Len() > 0 {
		ev, _ := events.Max()
		events.Delete(ev)

		for _, i := range ev.tops {
			for j := range active {
				if DoIntersect(segments[i], segments[j]) && !ShareEndpoint(segments[i], segments[j]) {
					intersections[NewOrderedPair(i, j)] = struct{}{}
				}
			}
		}
		for _, i := range ev.tops {
			active[i] = struct{}{}
		}
		for _, i := range ev.bottoms {
			delete(active, i)
		}
	}

	return intersections
}
