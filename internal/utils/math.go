package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

// MulNoOverflow returns a * b and true if the product of the two non-negative operands fits in an int.
func MulNoOverflow(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SpanLen returns the number of integers in [lo, hi] and true if that count fits in an int.
// An empty span (hi < lo) has a length of zero.
func SpanLen[I constraints.Integer](lo, hi I) (int, bool) {
	if hi < lo {
		return 0, true
	}

	var span uint64
	if lo < 0 && hi >= 0 {
		// lo is negative: -lo is computed in uint64 to support the minimum value of signed types.
		span = uint64(hi) + uint64(-(lo+1)) + 1
	} else {
		span = uint64(hi - lo)
	}

	if span >= math.MaxInt {
		return 0, false
	}
	return int(span) + 1, true
}
