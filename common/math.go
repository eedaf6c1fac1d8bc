package common

import "math"

// Clamp bounds v to [lo, hi]. hi may be +Inf.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
