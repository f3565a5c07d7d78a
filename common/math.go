package common

import "math"

// AddAmount returns a+b, reporting overflow instead of wrapping.
func AddAmount(a, b uint64) (uint64, bool) {
	if a > math.MaxUint64-b {
		return 0, false
	}
	return a + b, true
}

// SubAmount returns a-b, reporting underflow instead of wrapping.
func SubAmount(a, b uint64) (uint64, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

// ApplyDelta adjusts an unsigned amount by a signed delta, reporting
// overflow and underflow instead of wrapping.
func ApplyDelta(a uint64, delta int64) (uint64, bool) {
	if delta >= 0 {
		return AddAmount(a, uint64(delta))
	}
	return SubAmount(a, uint64(-delta))
}
