package cache

import "iter"

// Factorization lazily divides a number by the cached primes in
// ascending order, yielding each prime factor together with its
// multiplicity. It is finite, single-pass and not restartable.
//
// Prime factors beyond the cache's range are never yielded; their
// product can be retrieved with Remainder.
type Factorization struct {
	primes []uint32
	idx    int
	number uint32
}

// Factorization returns an iterator over the prime factors of number and
// their multiplicities, in increasing order.
func (c *Cache) Factorization(number uint32) *Factorization {
	return &Factorization{primes: c.primes, number: number}
}

// Next returns the next prime factor and its multiplicity. ok is false
// when no further cached prime divides the remaining number.
func (f *Factorization) Next() (prime uint32, multiplicity int, ok bool) {
	if f.number <= 1 {
		return 0, 0, false
	}

	for f.idx < len(f.primes) {
		p := f.primes[f.idx]
		f.idx++

		count := 0
		for f.number%p == 0 {
			f.number /= p
			count++
		}

		if count > 0 {
			return p, count, true
		}
	}

	return 0, 0, false
}

// All returns an iterator over the remaining factors. It shares state
// with Next: factors already consumed are not replayed.
func (f *Factorization) All() iter.Seq2[uint32, int] {
	return func(yield func(uint32, int) bool) {
		for {
			prime, multiplicity, ok := f.Next()
			if !ok {
				return
			}
			if !yield(prime, multiplicity) {
				return
			}
		}
	}
}

// Remainder consumes the rest of the iterator and returns the product of
// any prime factors larger than the cache's range. ok is false when the
// number was fully factored by cached primes.
func (f *Factorization) Remainder() (uint32, bool) {
	for {
		if _, _, ok := f.Next(); !ok {
			break
		}
	}

	if f.number > 1 {
		return f.number, true
	}
	return 0, false
}

// Factors lazily yields the distinct prime factors of a number in
// ascending order, without computing multiplicities. It is finite,
// single-pass and not restartable.
//
// Cheaper than Factorization when multiplicities are not needed, since
// the number is not divided down. Prime factors beyond the cache's range
// are never yielded; their product can be retrieved with Remainder.
type Factors struct {
	primes []uint32
	idx    int
	number uint32
}

// Factors returns an iterator over the distinct prime factors of number.
func (c *Cache) Factors(number uint32) *Factors {
	return &Factors{primes: c.primes, number: number}
}

// Next returns the next distinct prime factor. ok is false when no
// further cached prime divides the number.
func (f *Factors) Next() (uint32, bool) {
	for f.idx < len(f.primes) {
		p := f.primes[f.idx]
		f.idx++
		if f.number%p == 0 {
			return p, true
		}
	}
	return 0, false
}

// All returns an iterator over the remaining distinct factors. It shares
// state with Next.
func (f *Factors) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		for {
			p, ok := f.Next()
			if !ok {
				return
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Remainder returns the product of any prime factors larger than the
// cache's range, doing the division work that Next skipped. ok is false
// when the number has no such factors.
func (f *Factors) Remainder() (uint32, bool) {
	n := f.number
	for _, p := range f.primes {
		for n%p == 0 {
			n /= p
		}
		if n == 1 {
			break
		}
	}

	if n > 1 {
		return n, true
	}
	return 0, false
}
