// Package point defines the foundational geometric primitives of the triangulation
// kernel: [Point], [Vector], [Segment], [Triangle], and [PointTriangle]. All later stages —
// segment intersection, polygon splitting, the sweep-line decomposer, and both
// triangulators — are built on these five types.
//
// # Overview
//
// Point uses single-precision (float32) coordinates and bit-exact equality, matching the
// data model's choice to accept the caveats of single precision rather than carry an
// exact-arithmetic predicate. Points are ordered lexicographically by (y, x), which is the
// order the sweep-line decomposer walks events in: from the highest point downward, and
// right-to-left (larger x first) among points sharing a height.
//
// # Notes
//
//   - Equality is exact (==  on the two float32 fields), not epsilon-tolerant. Any
//     tolerance needed by a caller belongs at a higher layer (see [options.WithEpsilon]).
//   - Constructing a degenerate [Segment] (equal endpoints) is a programmer error and
//     panics; see [NewSegment].
package point

import (
	"fmt"
	"math"
	"math/bits"
)

// Point represents a point in two-dimensional space with single-precision coordinates.
type Point struct {
	X, Y float32
}

// New creates a new Point with the specified x and y coordinates.
func New(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Eq reports whether two points are bit-exactly equal on both coordinates.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Less implements the (y, x) lexicographic order used throughout the pipeline:
// p is Less than q iff p.Y < q.Y, or p.Y == q.Y and p.X < q.X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Compare returns -1, 0, or 1 as p is less than, equal to, or greater than q in the (y, x)
// lexicographic order. It is suitable for use with [slices.SortFunc] and as the comparator
// backing a [github.com/google/btree.BTreeG] of Points.
func (p Point) Compare(q Point) int {
	switch {
	case p.Eq(q):
		return 0
	case p.Less(q):
		return -1
	default:
		return 1
	}
}

// Hash returns a 64-bit hash of the point derived from the bit patterns of its
// coordinates, such that p.Eq(q) implies p.Hash() == q.Hash(). It exists so Point can key
// a plain Go map without relying on the language's native float equality for map keys
// coinciding with [Point.Eq] (it does, for float32, but the explicit hash documents the
// invariant the data model requires).
func (p Point) Hash() uint64 {
	xHash := bits.RotateLeft64(uint64(math.Float32bits(p.X)), 16)
	yHash := uint64(math.Float32bits(p.Y))
	return xHash ^ yHash
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(x=%v, y=%v)", p.X, p.Y)
}

// Add returns p translated by the vector v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from q to p (p - q).
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// Vector represents a displacement in two-dimensional space.
type Vector struct {
	X, Y float32
}

// NewVector creates a new Vector with the specified components.
func NewVector(x, y float32) Vector {
	return Vector{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns the difference of two vectors (v - o).
func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by factor.
func (v Vector) Scale(factor float32) Vector {
	return Vector{X: v.X * factor, Y: v.Y * factor}
}

// Div returns v divided component-wise by a scalar.
func (v Vector) Div(factor float32) Vector {
	return Vector{X: v.X / factor, Y: v.Y / factor}
}

// Negate returns the reverse of v.
func (v Vector) Negate() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float32 {
	return VectorLength(Point{}, Point{X: v.X, Y: v.Y})
}

// VectorLength returns the Euclidean distance between p1 and p2.
func VectorLength(p1, p2 Point) float32 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return float32(math.Sqrt(float64(dx*dx + dy*dy)))
}

// Triangle holds three indices into a vertex array, the final representation emitted by
// the triangulators once their intermediate [PointTriangle] lists have been re-indexed
// against a deduplicated vertex list.
type Triangle struct {
	A, B, C uint32
}

// NewTriangle creates a new Triangle referencing the given vertex indices.
func NewTriangle(a, b, c uint32) Triangle {
	return Triangle{A: a, B: b, C: c}
}

// PointTriangle holds three Points directly, used as the triangulators' intermediate
// output before vertex deduplication collapses repeated Points into a single index.
type PointTriangle struct {
	A, B, C Point
}

// NewPointTriangle creates a new PointTriangle from three points.
func NewPointTriangle(a, b, c Point) PointTriangle {
	return PointTriangle{A: a, B: b, C: c}
}
