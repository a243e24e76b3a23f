// Package trigon is a 2D polygon geometry kernel for GPU rendering: it turns a set of
// input polygons (faces, possibly with holes expressed as extra rings or as a single
// self-revisiting boundary) into two kinds of output triangle meshes — a filled face mesh
// honoring the even-odd fill rule, and a per-path stroke mesh for drawing the outlines at
// a caller-chosen width.
//
// The pipeline is built bottom-up from six collaborating packages:
//
//   - point: the foundational Point/Vector/Segment/Triangle types and the orientation
//     predicate everything else is built on.
//   - intersect: pairwise and all-pairs segment intersection.
//   - polygon: edge deduplication (the even-odd rule) and splitting a self-revisiting
//     polygon boundary into simple sub-polygons.
//   - sweep: the sweep-line decomposition of a deduplicated edge set into y-monotone
//     polygons.
//   - monotone: the classical two-chain stack triangulation of one y-monotone polygon.
//   - stroke: path (outline) triangulation with mitered and beveled joins.
//
// [TriangulatePolygonsWithEdge] is the top-level entry point tying all six together; it
// is the only function most callers need.
package trigon

import (
	"context"
	"sync"

	"github.com/go-trigon/trigon/monotone"
	"github.com/go-trigon/trigon/options"
	"github.com/go-trigon/trigon/point"
	"github.com/go-trigon/trigon/polygon"
	"github.com/go-trigon/trigon/stroke"
	"github.com/go-trigon/trigon/sweep"
)

func init() {
	logDebugf("debug logging enabled")
}

// FaceResult is the filled-triangle output of [TriangulatePolygonsWithEdge]: Vertices is
// the deduplicated vertex list the Triangle indices reference.
type FaceResult struct {
	Triangles []point.Triangle
	Vertices  []point.Point
}

// StrokeResult wraps one input polygon's path (outline) triangulation, in the same
// centers/offsets/triangles shape [stroke.TriangulatePathEdge] returns.
type StrokeResult struct {
	Centers   []point.Point
	Offsets   []point.Point
	Triangles []point.Triangle
}

// TriangulatePolygonsWithEdge triangulates a set of input polygons into a single combined
// face mesh (even-odd fill rule applied across every input polygon together, since that
// resolution genuinely spans the whole set) and one [StrokeResult] per polygon produced by
// splitting each input polygon along its repeated edges, in input order.
//
// The face pass is sequential: the sweep-line decomposer has no independent per-polygon
// structure once polygons are combined into one edge set. The stroke passes are
// independent of one another and of the face pass, and run concurrently on a bounded
// worker pool; ctx is checked between paths so a caller can cancel a large batch, though
// neither pass has a natural mid-polygon cancellation point.
func TriangulatePolygonsWithEdge(
	ctx context.Context,
	polygons [][]point.Point,
	opts ...options.StrokeOption,
) (face FaceResult, strokes []StrokeResult, err error) {
	cfg := options.ApplyStrokeOptions(opts...)

	var splitPolygons [][]point.Point
	var allDedupEdges []point.Segment

	for _, poly := range polygons {
		split, _ := polygon.SplitPolygonOnRepeatedEdges(poly)
		splitPolygons = append(splitPolygons, split...)
	}
	allDedupEdges = polygon.CalcDedupEdges(polygons)

	face = triangulateFaces(allDedupEdges, cfg.Epsilon)

	strokes, err = triangulateStrokesConcurrently(ctx, splitPolygons, opts...)
	return face, strokes, err
}

// triangulateFaces runs the sweep-line decomposer (C6) over the combined deduplicated
// edge set, triangulates every resulting y-monotone polygon (C5), and deduplicates the
// output vertices into a single indexed [FaceResult]. epsilon is the sweep's near-collinear
// tolerance, sourced from [options.StrokeOptions.Epsilon] via [options.WithEpsilon].
func triangulateFaces(dedupEdges []point.Segment, epsilon float32) FaceResult {
	monotonePolygons := sweep.Decompose(dedupEdges, epsilon)

	vertexIndex := make(map[point.Point]uint32)
	vertices := []point.Point{}
	indexOf := func(p point.Point) uint32 {
		if idx, ok := vertexIndex[p]; ok {
			return idx
		}
		idx := uint32(len(vertices))
		vertexIndex[p] = idx
		vertices = append(vertices, p)
		return idx
	}

	triangles := []point.Triangle{}
	for _, mp := range monotonePolygons {
		for _, pt := range monotone.Triangulate(mp) {
			triangles = append(triangles, point.NewTriangle(indexOf(pt.A), indexOf(pt.B), indexOf(pt.C)))
		}
	}

	return FaceResult{Triangles: triangles, Vertices: vertices}
}

// triangulateStrokesConcurrently triangulates each path's stroke outline (C4) on a
// bounded worker pool, reassembling results in input order regardless of completion
// order.
func triangulateStrokesConcurrently(
	ctx context.Context,
	paths [][]point.Point,
	opts ...options.StrokeOption,
) ([]StrokeResult, error) {
	results := make([]StrokeResult, len(paths))

	const maxWorkers = 8
	workers := maxWorkers
	if len(paths) < workers {
		workers = len(paths)
	}
	if workers == 0 {
		return results, nil
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	var firstErr error

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				centers, offsets, triangles := stroke.TriangulatePathEdge(paths[idx], true, opts...)
				results[idx] = StrokeResult{Centers: centers, Offsets: offsets, Triangles: triangles}
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case <-ctx.Done():
			firstErr = ctx.Err()
			break feed
		default:
		}
		select {
		case <-ctx.Done():
			firstErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, firstErr
}
