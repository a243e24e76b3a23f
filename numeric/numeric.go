// Package numeric provides the small set of floating-point helpers the triangulation
// pipeline needs on top of raw float32 arithmetic: epsilon-tolerant comparisons and the
// coordinate type alias used throughout the kernel.
//
// The geometry kernel itself is deliberately single-precision and mostly bit-exact (see
// [point.Point] equality); this package exists only for the place where an epsilon
// tolerance is explicitly part of the contract rather than an accident of floating point:
// the near-collinear orientation test ([point.OrientationWithEpsilon]) the sweep uses to
// order edges.
package numeric

// Coord is the coordinate type used throughout the triangulation pipeline. The pipeline is
// specified in single precision; this alias exists so call sites read as domain code
// ("a Coord") rather than as a raw primitive, matching the host codebase's convention of
// naming its scalar type even when it resolves to a plain float.
type Coord = float32
