package pipeline

import "math"

// WithinTolerance reports whether a converted duration stays within the
// relative tolerance of its source duration. A tolerance of 0.05 allows the
// converted file to deviate by up to 5% of the source length.
func WithinTolerance(source, converted, tolerance float64) bool {
	return math.Abs(converted-source) <= tolerance*source
}
