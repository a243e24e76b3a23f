// Package types defines the small shared vocabulary used across the trigon triangulation
// pipeline: the [Orientation] predicate result, the [Side] a monotone-polygon chain point
// belongs to, and the [IntersectionKind] a pairwise segment test resolves to.
//
// These are kept in their own package, separate from [point] and [sweep], because all three
// of the higher-level packages (point, monotone, sweep) need to refer to them without
// introducing an import cycle between each other.
package types
