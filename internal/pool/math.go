package pool

import "math/bits"

// mulDiv computes a*b/c over a 128-bit intermediate product with
// truncating division, then narrows the quotient to its low 64 bits.
// c must be non-zero.
func mulDiv(a, b, c uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	// long division: the high word of the quotient is discarded by the
	// narrowing, so only the low word is computed
	q, _ := bits.Div64(hi%c, lo, c)
	return q
}

// mulWrap computes a*b over a 128-bit intermediate and narrows the
// product to its low 64 bits.
func mulWrap(a, b uint64) uint64 {
	_, lo := bits.Mul64(a, b)
	return lo
}
