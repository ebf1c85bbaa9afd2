// Package sieve implements the sieve of Eratosthenes and the segmented
// sieve that the rest of the library is built on.
//
// Every function works on a caller-chosen memory budget that is decoupled
// from the requested result size: a base sieve of length mem can certify
// the prime status of any value v with v < mem², and the windowed queries
// LT and GEQ validate exactly that relationship before computing.
package sieve

import "github.com/hupe1980/primesieve/intmath"

// Sieve returns a slice of n booleans where the value at a given index
// indicates whether that index is prime.
//
// Uses a sieve of Eratosthenes, marking the multiples of each prime
// starting from its square. O(n log log n).
func Sieve(n int) []bool {
	flags := make([]bool, n)
	for i := 2; i < n; i++ {
		flags[i] = true
	}

	bound := intmath.Isqrt(uint64(n))
	for number := uint64(2); number <= bound; number++ {
		if flags[number] {
			for composite := number * number; composite < uint64(n); composite += number {
				flags[composite] = false
			}
		}
	}

	return flags
}

// Segment uses the primalities of the first len(base) integers in base to
// sieve the numbers in the window [upperLimit-len(base), upperLimit).
//
// base must hold the prime status of the first len(base) integers, as
// produced by Sieve. The result is only meaningful for window values
// below len(base)², since larger composites may have no prime factor in
// the base sieve. Requires upperLimit >= len(base).
func Segment(base []bool, upperLimit uint64) []bool {
	mem := uint64(len(base))
	lowerLimit := upperLimit - mem

	if lowerLimit == 0 {
		// The window coincides with the base sieve's own range. Composite
		// marking alone cannot reproduce it, since it does not know that
		// 0 and 1 are non-prime.
		out := make([]bool, len(base))
		copy(out, base)
		return out
	}

	segment := make([]bool, len(base))
	for i := range segment {
		segment[i] = true
	}

	if lowerLimit == 1 && len(base) > 0 {
		// 1 is not a multiple of any prime, but it is not prime either.
		segment[0] = false
	}

	for i, isPrime := range base {
		if !isPrime {
			continue
		}
		prime := uint64(i)

		// Smallest multiple of prime that is >= lowerLimit, and strictly
		// larger than the prime itself so the prime is never marked as
		// its own composite.
		composite := (lowerLimit / prime) * prime
		if composite < lowerLimit {
			composite += prime
		}
		if composite == prime {
			composite += prime
		}

		for ; composite < upperLimit; composite += prime {
			segment[composite-lowerLimit] = false
		}
	}

	return segment
}

// LT returns n booleans indicating the prime status of the n integers
// directly below upperLimit, in ascending order: the value at index i
// represents upperLimit - n + i.
//
// A working sieve of size mem is used for the computation, so the call is
// valid whenever upperLimit <= mem². Requires mem >= n, which is a
// programming error and panics if violated.
func LT(n, mem int, upperLimit uint64) ([]bool, error) {
	memSqr := validateBudget(n, mem)

	if upperLimit > memSqr {
		return nil, &ErrTooLargeLimit{Limit: upperLimit, MemSqr: memSqr}
	}

	if upperLimit < uint64(n) {
		return nil, &ErrTooSmallLimit{Limit: upperLimit, Min: uint64(n)}
	}

	base := Sieve(mem)

	var window []bool
	var offset int
	if upperLimit <= uint64(mem) {
		// The window would underflow below zero; read straight out of
		// the base sieve instead.
		window = base
		offset = mem - int(upperLimit)
	} else {
		window = Segment(base, upperLimit)
	}

	out := make([]bool, n)
	for i := range out {
		out[n-1-i] = window[mem-1-i-offset]
	}

	return out, nil
}

// GEQ returns n booleans indicating the prime status of the n integers
// starting at lowerLimit, in ascending order: the value at index i
// represents lowerLimit + i.
//
// A working sieve of size mem is used for the computation, so the call is
// valid whenever lowerLimit + mem <= mem². Requires mem >= n, which is a
// programming error and panics if violated.
func GEQ(n, mem int, lowerLimit uint64) ([]bool, error) {
	memSqr := validateBudget(n, mem)

	upperLimit, ok := intmath.CheckedAdd(lowerLimit, uint64(mem))
	if !ok {
		return nil, &ErrTotalDoesntFitU64{Limit: lowerLimit, Mem: mem}
	}

	if upperLimit > memSqr {
		return nil, &ErrTooLargeLimit{Limit: lowerLimit, MemSqr: memSqr}
	}

	base := Sieve(mem)

	var window []bool
	if lowerLimit == 0 {
		window = base
	} else {
		window = Segment(base, upperLimit)
	}

	out := make([]bool, n)
	copy(out, window[:n])

	return out, nil
}

// validateBudget panics on parameter relationships that are pure
// programming errors, and returns mem².
func validateBudget(n, mem int) uint64 {
	if n < 0 {
		panic("primesieve: result size must not be negative")
	}
	if mem < n {
		panic("primesieve: `mem` must be at least as large as `n`")
	}

	memSqr, ok := intmath.CheckedMul(uint64(mem), uint64(mem))
	if !ok {
		panic("primesieve: `mem`^2 must fit in a uint64")
	}

	return memSqr
}

// PrimePi returns a slice of size n where the value at a given index is
// the number of primes less than or equal to that index.
func PrimePi(n int) []int {
	counts := make([]int, n)
	if n <= 2 {
		return counts
	}

	flags := Sieve(n)
	counts[2] = 1

	count := 1
	for i := 3; i < n; i += 2 {
		if flags[i] {
			count++
		}
		counts[i] = count
		if i+1 < n {
			counts[i+1] = count
		}
	}

	return counts
}
