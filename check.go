package vect

import "math"

// checkFinite panics with msg if any value is NaN or infinite.
// Compiles to nothing unless the vect_debug tag is set.
func checkFinite(msg string, vs ...float64) {
	if !debugChecks {
		return
	}
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic("vect: " + msg)
		}
	}
}

// checkNonZero panics with msg if s is zero. Same gating as checkFinite.
func checkNonZero(msg string, s float64) {
	if debugChecks && s == 0 {
		panic("vect: " + msg)
	}
}
