package scan

import "math/bits"

// PowerOfTwoPad returns the smallest power of two that is >= n, and 1 for
// n <= 1.
func PowerOfTwoPad(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
