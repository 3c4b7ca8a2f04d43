package advanced

import "math"

// Tolerance for collinearity in the boundary test. Nothing else uses it: the
// crossing test compares exactly.
const Epsilon = 1e-9

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Does v lie in the closed interval spanned by a and b, in either order?
func between(v, a, b float64) bool {
	return v >= math.Min(a, b) && v <= math.Max(a, b)
}
