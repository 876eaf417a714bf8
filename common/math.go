package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// ApproxEqual reports whether a and b are within tol of each other.
func ApproxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// Finite reports whether every value is neither NaN nor infinite.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MsToSeconds converts a frame delta in milliseconds to seconds.
func MsToSeconds(ms float64) float64 {
	return ms / 1000.0
}
