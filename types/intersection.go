package types

import "fmt"

// IntersectionKind classifies the result of a pairwise segment intersection test.
type IntersectionKind uint8

// Valid values for IntersectionKind.
const (
	// NoIntersection indicates the segments are parallel without lying on the same line,
	// and so share no point.
	NoIntersection IntersectionKind = iota

	// PointIntersection indicates the segments are not parallel. The point reported is where
	// their supporting lines cross, or the nearer endpoint of the first segment when that
	// crossing lies outside it.
	PointIntersection

	// CollinearNoOverlap indicates the segments lie on the same infinite line but their
	// bounding intervals do not overlap.
	CollinearNoOverlap

	// CollinearWithOverlap indicates the segments lie on the same infinite line and
	// share one or two boundary points (a touching endpoint, or a genuine overlap
	// whose shared region is itself a sub-segment bounded by those two points).
	CollinearWithOverlap
)

// String converts an [IntersectionKind] constant into its string representation.
//
// Panics:
//   - If the value is not one of the defined constants.
func (k IntersectionKind) String() string {
	switch k {
	case NoIntersection:
		return "NoIntersection"
	case PointIntersection:
		return "PointIntersection"
	case CollinearNoOverlap:
		return "CollinearNoOverlap"
	case CollinearWithOverlap:
		return "CollinearWithOverlap"
	default:
		panic(fmt.Errorf("unsupported IntersectionKind: %d", k))
	}
}
