package sieve

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// PrimeBitmap wraps a roaring bitmap whose members are exactly the primes
// below some bound. It supports the usual set algebra plus rank-based
// counting, which makes range prime counts O(log n).
type PrimeBitmap struct {
	rb *roaring.Bitmap
	// limit is the exclusive bound below which membership is meaningful.
	limit uint64
}

// NewPrimeBitmap sieves the first n integers and collects the primes into
// a bitmap.
func NewPrimeBitmap(n int) *PrimeBitmap {
	rb := roaring.New()
	for i, isPrime := range Sieve(n) {
		if isPrime {
			rb.Add(uint32(i))
		}
	}

	return &PrimeBitmap{rb: rb, limit: uint64(n)}
}

// Limit returns the exclusive bound below which the bitmap is meaningful.
func (b *PrimeBitmap) Limit() uint64 {
	return b.limit
}

// Contains reports whether v is prime. The second return value is false
// if v is outside the sieved range, in which case nothing is known.
func (b *PrimeBitmap) Contains(v uint32) (bool, bool) {
	if uint64(v) >= b.limit {
		return false, false
	}
	return b.rb.Contains(v), true
}

// Cardinality returns the number of primes in the bitmap.
func (b *PrimeBitmap) Cardinality() uint64 {
	return b.rb.GetCardinality()
}

// CountLEQ returns the number of primes less than or equal to v, and
// false if v is outside the sieved range.
func (b *PrimeBitmap) CountLEQ(v uint32) (uint64, bool) {
	if uint64(v) >= b.limit {
		return 0, false
	}
	return b.rb.Rank(v), true
}

// CountRange returns the number of primes in [lo, hi), and false if hi
// exceeds the sieved range.
func (b *PrimeBitmap) CountRange(lo, hi uint32) (uint64, bool) {
	if uint64(hi) > b.limit || lo > hi {
		return 0, false
	}
	if lo == hi {
		return 0, true
	}

	count := b.rb.Rank(hi - 1)
	if lo > 0 {
		count -= b.rb.Rank(lo - 1)
	}
	return count, true
}

// Clone returns a deep copy of the bitmap.
func (b *PrimeBitmap) Clone() *PrimeBitmap {
	return &PrimeBitmap{rb: b.rb.Clone(), limit: b.limit}
}

// Bitmap returns the underlying roaring bitmap. The caller must treat it
// as read-only.
func (b *PrimeBitmap) Bitmap() *roaring.Bitmap {
	return b.rb
}

// All returns an iterator over the primes in ascending order.
func (b *PrimeBitmap) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		it := b.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
