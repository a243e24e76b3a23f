// Package stroke implements path (stroke) triangulation (C4): turning a polyline into
// the triangles that fill a constant-width ribbon around it, with mitered or beveled
// joins at interior vertices.
package stroke

import (
	"math"

	"github.com/go-trigon/trigon/options"
	"github.com/go-trigon/trigon/point"
)

// vertexGroup records, for one input path vertex, the indices into the centers/offsets
// arrays that a neighbouring joint's strip quad must connect to. entry/exit differ from
// each other only at a beveled joint, where the outer side grows from one vertex to three
// and the strip still only ever connects to the first (entry, facing the incoming edge)
// or last (exit, facing the outgoing edge) of the three.
type vertexGroup struct {
	leftEntry, leftExit   int
	rightEntry, rightExit int
}

// TriangulatePathEdge triangulates path into a constant-width stroke outline. It returns,
// for every emitted vertex, a centerline position and a unit-scaled displacement normal —
// callers compute the final vertex as center + lineWidth*offset — plus the triangle
// indices connecting them.
//
// Degenerate input (fewer than 2 distinct points) returns empty, non-nil slices rather
// than an error: there is no ribbon to draw, not a malformed one.
func TriangulatePathEdge(path []point.Point, closed bool, opts ...options.StrokeOption) (centers, offsets []point.Point, triangles []point.Triangle) {
	cfg := options.ApplyStrokeOptions(opts...)

	pts := dedupeConsecutive(path)
	if closed && len(pts) > 1 && pts[0].Eq(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}

	centers = []point.Point{}
	offsets = []point.Point{}
	triangles = []point.Triangle{}

	n := len(pts)
	if n < 2 {
		return centers, offsets, triangles
	}

	dirCount := n - 1
	if closed {
		dirCount = n
	}
	dirs := make([]point.Vector, dirCount)
	for i := range dirs {
		a := pts[i]
		b := pts[(i+1)%n]
		dirs[i] = unit(b.Sub(a))
	}

	emit := func(center point.Point, offset point.Vector) int {
		centers = append(centers, center)
		offsets = append(offsets, point.New(offset.X, offset.Y))
		return len(centers) - 1
	}

	groups := make([]vertexGroup, n)

	for v := 0; v < n; v++ {
		switch {
		case !closed && v == 0:
			nrm := normalOf(dirs[0])
			l := emit(pts[v], nrm)
			r := emit(pts[v], nrm.Negate())
			groups[v] = vertexGroup{l, l, r, r}
		case !closed && v == n-1:
			nrm := normalOf(dirs[len(dirs)-1])
			l := emit(pts[v], nrm)
			r := emit(pts[v], nrm.Negate())
			groups[v] = vertexGroup{l, l, r, r}
		default:
			in := dirs[(v-1+len(dirs))%len(dirs)]
			out := dirs[v%len(dirs)]
			groups[v] = emitJoint(pts[v], in, out, cfg, emit, &triangles)
		}
	}

	upTo := n - 1
	if closed {
		upTo = n
	}
	for v := 0; v < upTo; v++ {
		next := (v + 1) % n
		a, b := groups[v], groups[next]
		triangles = append(triangles,
			point.NewTriangle(uint32(a.leftExit), uint32(a.rightExit), uint32(b.leftEntry)),
			point.NewTriangle(uint32(b.leftEntry), uint32(a.rightExit), uint32(b.rightEntry)),
		)
	}

	return centers, offsets, triangles
}

// emitJoint builds the emitted vertices (and, for a beveled corner, the extra fan
// triangles) at one interior path vertex where edge in meets edge out.
func emitJoint(
	p point.Point,
	in, out point.Vector,
	cfg options.StrokeOptions,
	emit func(point.Point, point.Vector) int,
	triangles *[]point.Triangle,
) vertexGroup {
	normalIn := normalOf(in)
	normalOut := normalOf(out)

	sum := normalIn.Add(normalOut)
	bisector := unit(sum)
	if sum.Length() == 0 {
		// The path reverses on itself (180-degree turn); fall back to the incoming
		// normal as the bisector direction so the join degenerates to a flat cap
		// rather than dividing by zero.
		bisector = normalIn
	}

	cosHalf := float64(normalIn.X*bisector.X + normalIn.Y*bisector.Y)
	var scale float32
	if cosHalf == 0 {
		scale = float32(math.Inf(1))
	} else {
		scale = float32(1 / cosHalf)
	}

	cross := in.X*out.Y - in.Y*out.X
	needsBevel := cfg.ForceBevel || float32(math.Abs(float64(scale))) > cfg.MiterLimit

	if !needsBevel || cross == 0 {
		l := emit(p, bisector.Scale(scale))
		r := emit(p, bisector.Scale(-scale))
		return vertexGroup{l, l, r, r}
	}

	outerIsLeft := cross < 0

	innerScale := float32(1)
	if cosHalf != 0 {
		innerScale = 1 / float32(math.Abs(cosHalf))
		if innerScale > cfg.MiterLimit {
			innerScale = 1
		}
	}

	if outerIsLeft {
		inner := emit(p, bisector.Scale(-innerScale))
		o0 := emit(p, normalIn)
		o1 := emit(p, bisector)
		o2 := emit(p, normalOut)
		*triangles = append(*triangles,
			point.NewTriangle(uint32(inner), uint32(o0), uint32(o1)),
			point.NewTriangle(uint32(inner), uint32(o1), uint32(o2)),
		)
		return vertexGroup{leftEntry: o0, leftExit: o2, rightEntry: inner, rightExit: inner}
	}

	inner := emit(p, bisector.Scale(innerScale))
	o0 := emit(p, normalIn.Negate())
	o1 := emit(p, bisector.Negate())
	o2 := emit(p, normalOut.Negate())
	*triangles = append(*triangles,
		point.NewTriangle(uint32(inner), uint32(o0), uint32(o1)),
		point.NewTriangle(uint32(inner), uint32(o1), uint32(o2)),
	)
	return vertexGroup{leftEntry: inner, leftExit: inner, rightEntry: o0, rightExit: o2}
}

func normalOf(dir point.Vector) point.Vector {
	return point.NewVector(-dir.Y, dir.X)
}

func unit(v point.Vector) point.Vector {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Div(length)
}

func dedupeConsecutive(path []point.Point) []point.Point {
	out := make([]point.Point, 0, len(path))
	for _, p := range path {
		if len(out) > 0 && out[len(out)-1].Eq(p) {
			continue
		}
		out = append(out, p)
	}
	return out
}
