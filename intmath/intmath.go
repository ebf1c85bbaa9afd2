// Package intmath provides overflow-safe 64-bit integer arithmetic used by
// the sieving and primality-testing code.
//
// All functions are pure and allocation-free. Intermediate products are
// widened to 128 bits via math/bits, so they are safe for the full uint64
// range.
package intmath

import "math/bits"

// Isqrt returns the largest integer smaller than or equal to the square
// root of n, i.e. Isqrt(n)² <= n < (Isqrt(n)+1)².
//
// Uses Newton's method on integers; no floating point is involved.
func Isqrt(n uint64) uint64 {
	if n <= 1 {
		return n
	}

	x0 := uint64(1) << (uint(bits.Len64(n))/2 + 1)
	x1 := (x0 + n/x0) / 2
	for x1 < x0 {
		x0 = x1
		x1 = (x0 + n/x0) / 2
	}

	return x0
}

// ModMul returns (a * b) mod m without overflow.
//
// The product is computed in 128 bits, so any a and b are valid.
// Panics if m is zero, like the % operator.
func ModMul(a, b, m uint64) uint64 {
	a %= m
	b %= m
	hi, lo := bits.Mul64(a, b)
	// After reduction hi < m, which bits.Div64 requires.
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// ModPow returns (base ^ exp) mod m via binary exponentiation.
// An exponent of zero yields 1. Panics if m is zero.
func ModPow(base, exp, m uint64) uint64 {
	res := uint64(1) % m
	base %= m

	for exp > 0 {
		if exp%2 == 1 {
			res = ModMul(res, base, m)
		}
		base = ModMul(base, base, m)
		exp >>= 1
	}

	return res
}

// CheckedMul returns a*b and whether the product fits in a uint64.
func CheckedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// CheckedAdd returns a+b and whether the sum fits in a uint64.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}
