// Package generate produces arrays of prime numbers using the segmented
// sieve primitives from the sieve package.
//
// The windowed generators LT and GEQ decouple the number of requested
// primes n from the working-memory budget mem: a budget of mem can
// certify any prime below mem². When the requested range runs out of
// primes (LT) or the generation would leave the certified range (GEQ),
// the functions return a partially populated section.Section instead of
// failing; only invalid parameters produce errors.
package generate

import (
	"github.com/hupe1980/primesieve/intmath"
	"github.com/hupe1980/primesieve/section"
	"github.com/hupe1980/primesieve/sieve"
)

// Primes returns the first n prime numbers in ascending order.
//
// Uses a self-bootstrapping segmented sieve: the first n integers are
// sieved directly, and then fixed-width segments are re-sieved against
// all primes discovered so far until n primes have been collected.
//
// Panics if n <= 0: a zero-sized prime table is a programming error.
func Primes(n int) []uint32 {
	if n <= 0 {
		panic("primesieve: `n` must be at least 1")
	}

	if n == 1 {
		return []uint32{2}
	}
	if n == 2 {
		return []uint32{2, 3}
	}

	primes := make([]uint32, n)
	count := 0

	for number, isPrime := range sieve.Sieve(n) {
		if isPrime {
			primes[count] = uint32(number)
			count++
		}
	}

	// Slide a segment of width n upwards, sieving each segment against
	// every prime found so far. Termination is guaranteed because prime
	// gaps below any fixed bound are far smaller than n.
	flags := make([]bool, n)
	low, high := n-1, 2*n-1
	for count < n {
		for i := range flags {
			flags[i] = true
		}

		for _, p := range primes[:count] {
			prime := int(p)

			composite := (low / prime) * prime
			if composite < low {
				composite += prime
			}

			for ; composite < high; composite += prime {
				flags[composite-low] = false
			}
		}

		for i := low; i < high; i++ {
			if flags[i-low] {
				primes[count] = uint32(i)
				count++
				if count >= n {
					break
				}
			}
		}

		low += n
		high += n
	}

	return primes
}

// LT returns the n largest primes less than upperLimit, in ascending
// order, sieved with a working budget of mem.
//
// The underlying buffer fills from the end. If fewer than n primes exist
// below upperLimit the visible range of the returned section covers only
// the primes that do exist; Complete() reports whether all n were found.
//
// Errors if upperLimit <= 2 or upperLimit > mem². Panics if mem < n or
// mem² does not fit in a uint64, since those are programming errors.
func LT(n, mem int, upperLimit uint64) (section.Section[uint64], error) {
	memSqr := validateBudget(n, mem)

	if upperLimit <= 2 {
		return section.Section[uint64]{}, &sieve.ErrTooSmallLimit{Limit: upperLimit, Min: 3}
	}

	if upperLimit > memSqr {
		return section.Section[uint64]{}, &sieve.ErrTooLargeLimit{Limit: upperLimit, MemSqr: memSqr}
	}

	primes := make([]uint64, n)
	if n == 0 {
		return section.Complete(primes), nil
	}

	base := sieve.Sieve(mem)

	found := 0
	for found < n {
		smallest := primes[n-1-found]

		// Sieve the segment ending at the current upper limit, falling
		// back to the base sieve when the window would underflow zero.
		var window []bool
		var offset int
		if upperLimit <= uint64(mem) {
			window = base
			offset = mem - int(upperLimit)
		} else {
			window = sieve.Segment(base, upperLimit)
		}

		// Scan the window back-to-front so primes are discovered in
		// descending order and written from the end of the buffer.
		for i := 0; i < mem-offset; i++ {
			if window[mem-1-i-offset] {
				smallest = upperLimit - 1 - uint64(i)
				primes[n-1-found] = smallest
				found++
				if found >= n {
					return section.Complete(primes), nil
				}
			}
		}

		upperLimit = smallest
		if upperLimit <= 2 {
			// Ran out of primes: expose only the filled tail.
			return section.New(primes, n-found, n), nil
		}
	}

	return section.Complete(primes), nil
}

// GEQ returns the n smallest primes greater than or equal to lowerLimit,
// in ascending order, sieved with a working budget of mem.
//
// A lowerLimit of 2 or less requests the first n primes overall. Only
// primes below mem² can be certified; if the generation reaches mem²
// before n primes are found, the visible range of the returned section
// covers only the certified primes.
//
// Errors if lowerLimit >= mem² or if a window bound overflows a uint64.
// Panics if mem < n or mem² does not fit in a uint64.
func GEQ(n, mem int, lowerLimit uint64) (section.Section[uint64], error) {
	s, _, err := geq(n, mem, lowerLimit)
	return s, err
}

// geq additionally reports the first flagged value at or beyond mem² when
// the generation overran the certified range.
func geq(n, mem int, lowerLimit uint64) (section.Section[uint64], uint64, error) {
	memSqr := validateBudget(n, mem)

	primes := make([]uint64, n)
	if n == 0 {
		return section.Complete(primes), 0, nil
	}

	// There are no primes smaller than 2, so anything at or below it is
	// a request for the first n primes.
	if lowerLimit <= 2 {
		for i, p := range Primes(n) {
			primes[i] = uint64(p)
		}
		return section.Complete(primes), 0, nil
	}

	if lowerLimit >= memSqr {
		return section.Section[uint64]{}, 0, &sieve.ErrTooLargeLimit{Limit: lowerLimit, MemSqr: memSqr}
	}

	base := sieve.Sieve(mem)

	found := 0
	largest := uint64(0)
	sieveLimit := lowerLimit
	for found < n {
		upper, ok := intmath.CheckedAdd(sieveLimit, uint64(mem))
		if !ok {
			return section.Section[uint64]{}, 0, &sieve.ErrTotalDoesntFitU64{Limit: sieveLimit, Mem: mem}
		}

		window := sieve.Segment(base, upper)
		for i := 0; i < mem; i++ {
			if !window[i] {
				continue
			}
			largest = sieveLimit + uint64(i)

			// The base sieve knows nothing about numbers at or beyond
			// mem², so a flag there cannot be trusted.
			if largest >= memSqr {
				return section.New(primes, 0, found), largest, nil
			}

			if largest >= lowerLimit {
				primes[found] = largest
				found++
				if found >= n {
					return section.Complete(primes), 0, nil
				}
			}
		}
		sieveLimit = largest + 1
	}

	return section.Complete(primes), 0, nil
}

// LTStrict is LT for callers that require a fully populated result: a
// partial section is converted into ErrOutOfPrimes.
func LTStrict(n, mem int, upperLimit uint64) ([]uint64, error) {
	s, err := LT(n, mem, upperLimit)
	if err != nil {
		return nil, err
	}

	if !s.Complete() {
		return nil, ErrOutOfPrimes
	}

	return s.Slice(), nil
}

// GEQStrict is GEQ for callers that require a fully populated result: a
// partial section is converted into an ErrSieveOverrun carrying the first
// value that left the certified range.
func GEQStrict(n, mem int, lowerLimit uint64) ([]uint64, error) {
	s, overrun, err := geq(n, mem, lowerLimit)
	if err != nil {
		return nil, err
	}

	if !s.Complete() {
		return nil, &ErrSieveOverrun{Value: overrun}
	}

	return s.Slice(), nil
}

// TrialPrimes returns the first n primes computed by pure trial division.
//
// Much slower than Primes; it exists as a simple reference implementation
// and test oracle. Panics if n <= 0.
func TrialPrimes(n int) []uint32 {
	if n <= 0 {
		panic("primesieve: `n` must be at least 1")
	}

	primes := make([]uint32, n)
	primes[0] = 2

	number := uint32(3)
	for i := 1; i < n; number += 2 {
		isPrime := true
		bound := uint32(intmath.Isqrt(uint64(number))) + 1
		for _, p := range primes[:i] {
			if p >= bound {
				break
			}
			if number%p == 0 {
				isPrime = false
				break
			}
		}
		if isPrime {
			primes[i] = number
			i++
		}
	}

	return primes
}

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
