// Package primality provides a deterministic primality test for uint64
// values, built from trial division by a small wheel and a Miller-Rabin
// test with witness sets that are known to be sufficient below 2^64.
package primality

import (
	"math/bits"

	"github.com/hupe1980/primesieve/intmath"
)

// witnessSet pairs an exclusive upper bound with the Miller-Rabin
// witnesses that make the test deterministic below that bound.
type witnessSet struct {
	bound     uint64
	witnesses []uint64
}

// Ordered ascending by bound; the last entry covers the full uint64 range.
// Bounds and witnesses are the empirically verified sets from
// https://en.wikipedia.org/wiki/Miller%E2%80%93Rabin_primality_test#Testing_against_small_sets_of_bases
var witnessTable = []witnessSet{
	{2_046, []uint64{2}},
	{1_373_652, []uint64{2, 3}},
	{9_080_190, []uint64{31, 73}},
	{25_326_000, []uint64{2, 3, 5}},
	{4_759_123_140, []uint64{2, 7, 61}},
	{1_112_004_669_632, []uint64{2, 13, 23, 1_662_803}},
	{2_152_302_898_746, []uint64{2, 3, 5, 7, 11}},
	{3_474_749_660_382, []uint64{2, 3, 5, 7, 11, 13}},
	{341_550_071_728_320, []uint64{2, 3, 5, 7, 11, 13, 17}},
	{3_825_123_056_546_413_050, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23}},
	{1<<64 - 1, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}},
}

// MaxPrime is the largest prime representable by a uint64.
const MaxPrime uint64 = 18_446_744_073_709_551_557

// IsPrime returns whether n is prime.
//
// Does trial division with a mod-6 wheel up to log2(n) to cheaply reject
// numbers with small factors, then runs a deterministic Miller-Rabin test.
// Total for all inputs; never errors.
func IsPrime(n uint64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	// The wheel only needs to filter small factors; correctness is
	// carried entirely by the Miller-Rabin rounds below.
	trialLimit := uint64(bits.Len64(n) - 1)
	for candidate := uint64(5); candidate <= trialLimit; candidate += 6 {
		if n%candidate == 0 || n%(candidate+2) == 0 {
			return false
		}
	}

	// Decompose n-1 = 2^k * d with d odd.
	d := n - 1
	for d%2 == 0 {
		d >>= 1
	}

	var witnesses []uint64
	for _, set := range witnessTable {
		if n <= set.bound {
			witnesses = set.witnesses
			break
		}
	}

	for _, k := range witnesses {
		if k >= n {
			break
		}
		if !millerTest(d, n, k) {
			return false
		}
	}

	return true
}

// millerTest performs a single Miller-Rabin round with the witness k.
func millerTest(d, n, k uint64) bool {
	x := intmath.ModPow(k, d, n)
	if x == 1 || x == n-1 {
		return true
	}

	for d != n-1 {
		x = intmath.ModMul(x, x, n)
		d *= 2

		if x == 1 {
			return false
		}
		if x == n-1 {
			return true
		}
	}

	return false
}

// IsPrimeTrial returns whether n is prime using pure trial division by a
// mod-6 wheel up to the square root of n.
//
// Much slower than IsPrime for large inputs; it exists as a simple
// reference implementation and test oracle.
func IsPrimeTrial(n uint64) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}

	bound := intmath.Isqrt(n) + 1
	for candidate := uint64(5); candidate < bound; candidate += 6 {
		if n%candidate == 0 || n%(candidate+2) == 0 {
			return false
		}
	}

	return true
}
