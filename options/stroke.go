package options

// WithMiterLimit returns a [StrokeOption] that overrides [DefaultMiterLimit]. Values less
// than or equal to 1 are clamped to 1 (the miter scale is never below 1, so a limit below
// 1 would be exceeded by every join and make every join bevel).
func WithMiterLimit(limit float32) StrokeOption {
	return func(o *StrokeOptions) {
		if limit < 1 {
			limit = 1
		}
		o.MiterLimit = limit
	}
}

// WithBevel returns a [StrokeOption] that forces every stroke join to use a bevel,
// regardless of the miter limit.
func WithBevel(force bool) StrokeOption {
	return func(o *StrokeOptions) {
		o.ForceBevel = force
	}
}
