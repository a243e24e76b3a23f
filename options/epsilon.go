package options

// WithEpsilon returns a [StrokeOption] that sets the near-collinear tolerance the
// sweep-line decomposer applies when ordering two edges that share an event point.
//
// Parameters:
//   - epsilon: A small non-negative value specifying the tolerance range. Negative values
//     default to 0 (no tolerance).
func WithEpsilon(epsilon float32) StrokeOption {
	return func(o *StrokeOptions) {
		if epsilon < 0 {
			epsilon = 0
		}
		o.Epsilon = epsilon
	}
}
