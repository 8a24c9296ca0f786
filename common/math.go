package common

import "math"

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AlmostZero reports whether v is within eps of zero.
func AlmostZero(v float64) bool {
	return math.Abs(v) < 1e-9
}
