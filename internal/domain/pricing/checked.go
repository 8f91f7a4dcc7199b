package pricing

import "math"

// addInt64 and mulInt64 report ok=false instead of wrapping. Table values are
// validated non-negative, so only the positive bound is checked.
func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	return a + b, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a != 0 && b > math.MaxInt64/a {
		return 0, false
	}
	return a * b, true
}

// AddAmount adds two charges, failing on overflow.
func AddAmount(a, b int64) (int64, bool) {
	return addInt64(a, b)
}

// AddCredits adds two credit counts, failing on overflow.
func AddCredits(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}
