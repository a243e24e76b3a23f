package numeric

import "math"

// FloatEquals returns true if a and b are equal within a small epsilon threshold.
func FloatEquals(a, b Coord, epsilon Coord) bool {
	return Coord(math.Abs(float64(a-b))) <= epsilon
}

// FloatGreaterThan checks if 'a' is significantly greater than 'b'.
func FloatGreaterThan(a, b, epsilon Coord) bool {
	return a > b && !FloatEquals(a, b, epsilon)
}

// FloatLessThan checks if 'a' is significantly less than 'b'.
func FloatLessThan(a, b, epsilon Coord) bool {
	return a < b && !FloatEquals(a, b, epsilon)
}
