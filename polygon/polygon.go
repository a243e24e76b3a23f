// Package polygon implements edge deduplication and polygon splitting, the third
// component of the face-triangulation pipeline (C3).
//
// [CalcDedupEdges] computes the mod-2 symmetric difference of a set of polygons' directed
// edges, which is how this pipeline implements the even-odd fill rule: an edge that
// appears an even number of times across the input (a shared hole boundary, an
// overlapping outline) cancels out and is dropped; an edge appearing an odd number of
// times survives into the face triangulation.
//
// [SplitPolygonOnRepeatedEdges] prepares a single polygon whose boundary revisits points —
// for example an outer ring and an inner hole traced as one continuous path — by walking
// only the edges that survive deduplication, recovering the set of simple sub-polygons
// the sweep-line decomposer and stroke triangulator expect.
package polygon

import "github.com/go-trigon/trigon/point"

// ToSegments converts a closed polygon's vertex list into its boundary [point.Segment]s,
// wrapping the last point back to the first. Degenerate (zero-length) edges, caused by a
// repeated consecutive vertex, are skipped rather than panicking, since
// [point.NewSegment] would otherwise reject them.
func ToSegments(polygon []point.Point) []point.Segment {
	n := len(polygon)
	if n < 2 {
		return nil
	}
	segments := make([]point.Segment, 0, n)
	for i := 0; i < n; i++ {
		start := polygon[i]
		end := polygon[(i+1)%n]
		if start.Eq(end) {
			continue
		}
		segments = append(segments, point.NewSegment(start, end))
	}
	return segments
}

// CalcDedupEdges computes the mod-2 symmetric difference of the directed-edge multiset
// formed by walking every polygon in polygons cyclically: each edge's canonical
// [point.Segment] is inserted into a set, or removed if already present. The surviving
// edges are every Segment that appeared an odd number of times.
//
// The result is returned as a slice built from Go map iteration, so its order is
// unspecified — see the design notes on hash-iteration non-determinism. Callers must not
// depend on the order, only on the set of edges.
func CalcDedupEdges(polygons [][]point.Point) []point.Segment {
	seen := make(map[point.Segment]struct{})
	for _, poly := range polygons {
		for _, seg := range ToSegments(poly) {
			if _, ok := seen[seg]; ok {
				delete(seen, seg)
			} else {
				seen[seg] = struct{}{}
			}
		}
	}
	edges := make([]point.Segment, 0, len(seen))
	for seg := range seen {
		edges = append(edges, seg)
	}
	return edges
}
