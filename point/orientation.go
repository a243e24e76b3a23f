package point

import (
	"github.com/go-trigon/trigon/numeric"
	"github.com/go-trigon/trigon/types"
)

// Orientation determines the relative orientation of three points in a two-dimensional
// plane: whether p, q, r make a clockwise turn, a counterclockwise turn, or are
// collinear.
//
// It computes (q.Y-p.Y)*(r.X-q.X) against (r.Y-q.Y)*(q.X-p.X): equal means
// [types.Collinear], the first greater means [types.Clockwise], the first less means
// [types.CounterClockwise]. This is the only geometric predicate in the pipeline and is
// evaluated directly in the host float type — there is no exact-arithmetic fallback, so
// near-collinear inputs (three points within roughly 1e-6 of collinear, at coordinates
// near 1.0) can flip the result. See the design notes on numerical fragility.
func Orientation(p, q, r Point) types.Orientation {
	val1 := (q.Y - p.Y) * (r.X - q.X)
	val2 := (r.Y - q.Y) * (q.X - p.X)
	switch {
	case val1 == val2:
		return types.Collinear
	case val1 > val2:
		return types.Clockwise
	default:
		return types.CounterClockwise
	}
}

// OrientationWithEpsilon behaves like [Orientation], but treats val1 and val2 as equal
// whenever [numeric.FloatEquals] says they are within epsilon of each other, folding a
// near-collinear result into [types.Collinear] instead of letting floating-point error
// pick an arbitrary winding. epsilon <= 0 reduces to exactly [Orientation].
func OrientationWithEpsilon(p, q, r Point, epsilon float32) types.Orientation {
	val1 := (q.Y - p.Y) * (r.X - q.X)
	val2 := (r.Y - q.Y) * (q.X - p.X)
	switch {
	case numeric.FloatEquals(val1, val2, epsilon):
		return types.Collinear
	case val1 > val2:
		return types.Clockwise
	default:
		return types.CounterClockwise
	}
}
