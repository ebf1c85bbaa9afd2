// Package cache provides Cache, an immutable table of the first n prime
// numbers that answers primality, counting, neighbor and factorization
// queries by binary search.
//
// Every query is bounded by the cache's range: when asked about a number
// beyond the largest cached prime the answer is "unknown" (ok == false),
// never a silent guess.
package cache

import (
	"iter"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/primesieve/generate"
)

// Cache holds the first n primes in ascending order. Immutable after
// construction; safe for concurrent use.
type Cache struct {
	primes []uint32
}

// New sieves the first n primes into a cache.
//
// Panics if n <= 0: a zero-sized prime table is meaningless and treated
// as a programming error.
func New(n int) *Cache {
	if n <= 0 {
		panic("primesieve: `n` must be at least 1")
	}

	return &Cache{primes: generate.Primes(n)}
}

// Search looks for target in the table. If found it returns its index
// and true; otherwise it returns the index where target could be
// inserted while keeping the table sorted, and false. An insertion index
// equal to Len() means the target exceeds the cache's range and nothing
// is known about it.
func (c *Cache) Search(target uint32) (int, bool) {
	return slices.BinarySearch(c.primes, target)
}

// IsPrime returns whether n is prime. ok is false if n exceeds the
// largest prime in the cache, in which case nothing is known.
func (c *Cache) IsPrime(n uint32) (isPrime, ok bool) {
	i, found := c.Search(n)
	if found {
		return true, true
	}
	if i < len(c.primes) {
		return false, true
	}
	return false, false
}

// CountPrimesLEQ returns the number of primes less than or equal to n.
// ok is false if n exceeds the largest prime in the cache.
func (c *Cache) CountPrimesLEQ(n uint32) (count int, ok bool) {
	i, found := c.Search(n)
	if found {
		return i + 1, true
	}
	if i < len(c.primes) {
		return i, true
	}
	return 0, false
}

// PreviousPrime returns the largest prime smaller than n. ok is false if
// n <= 2 or if n exceeds the cache's range.
func (c *Cache) PreviousPrime(n uint32) (uint32, bool) {
	if n <= 2 {
		return 0, false
	}

	i, _ := c.Search(n)
	if i > 0 && i < len(c.primes) {
		return c.primes[i-1], true
	}
	return 0, false
}

// NextPrime returns the smallest prime greater than n. ok is false if n
// is at or beyond the largest prime in the cache.
func (c *Cache) NextPrime(n uint32) (uint32, bool) {
	i, found := c.Search(n)
	if found {
		if i+1 < len(c.primes) {
			return c.primes[i+1], true
		}
		return 0, false
	}
	if i < len(c.primes) {
		return c.primes[i], true
	}
	return 0, false
}

// Get returns the prime at the given index, and false if the index is
// out of bounds.
func (c *Cache) Get(index int) (uint32, bool) {
	if index < 0 || index >= len(c.primes) {
		return 0, false
	}
	return c.primes[index], true
}

// Last returns the largest prime in the cache.
func (c *Cache) Last() uint32 {
	return c.primes[len(c.primes)-1]
}

// Len returns the number of primes in the cache. Never zero.
func (c *Cache) Len() int {
	return len(c.primes)
}

// Slice returns the cached primes in ascending order. The caller must
// treat the slice as read-only.
func (c *Cache) Slice() []uint32 {
	return c.primes
}

// All returns an iterator over the cached primes in ascending order.
func (c *Cache) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for _, p := range c.primes {
			if !yield(p) {
				return
			}
		}
	}
}

// Equal reports whether two caches hold the same primes.
func (c *Cache) Equal(other *Cache) bool {
	return slices.Equal(c.primes, other.primes)
}

// Bitmap returns the cached primes as a roaring bitmap, for set algebra
// against other bitmaps. The bitmap is built fresh on every call; the
// caller owns it.
func (c *Cache) Bitmap() *roaring.Bitmap {
	rb := roaring.New()
	rb.AddMany(c.primes)
	return rb
}

// Totient returns the value of Euler's totient function of n: the number
// of positive integers up to n that are relatively prime to it.
//
// The totient is computed as the product of p^(k-1) * (p-1) over the
// prime factorization of n, using only cached primes. If n has a prime
// factor beyond the cache the computation cannot finish and a
// *PartialTotientError is returned carrying both the partial product and
// the residual factor.
func (c *Cache) Totient(n uint32) (uint32, error) {
	if n == 0 {
		return 0, nil
	}

	ans := uint32(1)
	for _, prime := range c.primes {
		count := uint32(0)
		for n%prime == 0 {
			n /= prime
			count++
		}

		if count > 0 {
			ans *= pow(prime, count-1) * (prime - 1)
		}

		if n == 1 {
			break
		}
	}

	if n != 1 {
		return 0, &PartialTotientError{
			TotientUsingKnownPrimes:      ans,
			ProductOfUnknownPrimeFactors: n,
		}
	}

	return ans, nil
}

// Mobius returns the value of the Möbius function of n: 0 if n has a
// squared prime factor, otherwise (-1)^k where k is the number of prime
// factors. ok is false if n has a prime factor beyond the cache, in
// which case the squarefree status of the residue is unknown.
func (c *Cache) Mobius(n uint32) (value int8, ok bool) {
	if n == 0 {
		return 0, true
	}

	f := c.Factorization(n)
	value = 1
	for _, multiplicity := range f.All() {
		if multiplicity > 1 {
			return 0, true
		}
		value = -value
	}

	if _, incomplete := f.Remainder(); incomplete {
		return 0, false
	}

	return value, true
}

func pow(base, exp uint32) uint32 {
	res := uint32(1)
	for ; exp > 0; exp-- {
		res *= base
	}
	return res
}
