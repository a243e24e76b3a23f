package polygon

import "github.com/go-trigon/trigon/point"

// removeOne removes the first occurrence of v from pts, preserving the order of the rest.
func removeOne(pts []point.Point, v point.Point) []point.Point {
	for i, p := range pts {
		if p.Eq(v) {
			return append(pts[:i], pts[i+1:]...)
		}
	}
	return pts
}

// SplitPolygonOnRepeatedEdges recovers the simple sub-polygons traced by a single boundary
// that revisits points — for example an outer ring and an inner hole walked as one
// continuous path, or two touching rings sharing a vertex.
//
// It first computes [CalcDedupEdges] on the single input polygon, cancelling any edge that
// the path traces twice (once in each direction, as happens at a shared vertex where the
// walk doubles back). What survives is an undirected multigraph in which every vertex has
// even degree, so it decomposes cleanly into edge-disjoint simple cycles: starting from an
// arbitrary surviving edge, the walk follows an unused edge out of each vertex it reaches
// (always the first one still listed, a fixed per-node cursor) until it returns to its
// starting point, emitting that cycle as one polygon and removing its edges from
// circulation, then repeats from whatever edges remain. Whenever the walk comes back to a
// vertex it already passed before reaching its start, the loop closed there is emitted as
// a polygon of its own, so every emitted chain visits each vertex once.
//
// SplitPolygonOnRepeatedEdges returns both the recovered polygons and the deduplicated
// edge set they were built from, since callers of C3 need both.
func SplitPolygonOnRepeatedEdges(polygon []point.Point) (polygons [][]point.Point, dedupEdges []point.Segment) {
	dedupEdges = CalcDedupEdges([][]point.Point{polygon})
	if len(dedupEdges) == 0 {
		return nil, dedupEdges
	}

	neighbors := make(map[point.Point][]point.Point)
	remaining := make(map[point.Segment]struct{}, len(dedupEdges))
	for _, seg := range dedupEdges {
		neighbors[seg.Bottom] = append(neighbors[seg.Bottom], seg.Top)
		neighbors[seg.Top] = append(neighbors[seg.Top], seg.Bottom)
		remaining[seg] = struct{}{}
	}

	removeEdge := func(a, b point.Point) {
		delete(remaining, point.NewSegment(a, b))
		neighbors[a] = removeOne(neighbors[a], b)
		neighbors[b] = removeOne(neighbors[b], a)
	}

	for len(remaining) > 0 {
		var start point.Segment
		for seg := range remaining {
			start = seg
			break
		}

		origin := start.Bottom
		chain := []point.Point{origin}
		current := origin
		next := start.Top
		removeEdge(current, next)

		for !next.Eq(origin) {
			for k, q := range chain {
				if q.Eq(next) {
					// The walk is back at a vertex it already passed: the stretch since
					// then is a closed cycle of its own.
					polygons = append(polygons, append([]point.Point(nil), chain[k:]...))
					chain = chain[:k]
					break
				}
			}
			chain = append(chain, next)
			current = next
			nbrs := neighbors[current]
			if len(nbrs) == 0 {
				// malformed input: the walk cannot close its cycle. Emit what was
				// traced rather than looping forever.
				break
			}
			next = nbrs[0]
			removeEdge(current, next)
		}

		polygons = append(polygons, chain)
	}

	return polygons, dedupEdges
}
