// Package section provides Section, a buffer where only a contiguous
// sub-range of the elements may be viewed.
//
// The generation functions return a Section when they cannot guarantee a
// fully populated result: the elements outside the visible range carry no
// guarantee and are never exposed as valid by the accessors.
package section

import (
	"cmp"
	"fmt"
	"hash/maphash"
	"iter"
	"slices"
)

// Section wraps a buffer plus a visible half-open range [start, end).
// All accessors except Full operate only on the visible part.
type Section[T cmp.Ordered] struct {
	buf   []T
	start int
	end   int
}

// New restricts buf so that only the elements in [start, end) are viewable.
//
// Panics if the range is out of bounds of buf. A reversed range (start >
// end) is treated as empty.
func New[T cmp.Ordered](buf []T, start, end int) Section[T] {
	if start < 0 || start > len(buf) || end > len(buf) {
		panic(fmt.Sprintf("section: range [%d, %d) out of bounds of buffer with length %d", start, end, len(buf)))
	}

	if start > end {
		start, end = 0, 0
	}

	return Section[T]{buf: buf, start: start, end: end}
}

// Complete returns a section whose visible range covers all of buf.
func Complete[T cmp.Ordered](buf []T) Section[T] {
	return Section[T]{buf: buf, start: 0, end: len(buf)}
}

// Slice returns the visible part of the buffer.
func (s Section[T]) Slice() []T {
	return s.buf[s.start:s.end]
}

// Full returns the entire underlying buffer, including elements outside
// the visible range. Those elements carry no guarantee.
func (s Section[T]) Full() []T {
	return s.buf
}

// Len returns the length of the visible part.
func (s Section[T]) Len() int {
	return s.end - s.start
}

// IsEmpty returns whether the visible part is empty.
func (s Section[T]) IsEmpty() bool {
	return s.Len() == 0
}

// Complete returns whether the visible range covers the whole buffer.
func (s Section[T]) Complete() bool {
	return s.Len() == len(s.buf)
}

// Start returns the inclusive start of the visible range within Full().
func (s Section[T]) Start() int {
	return s.start
}

// End returns the exclusive end of the visible range within Full().
func (s Section[T]) End() int {
	return s.end
}

// At returns the element at the given index of the visible part.
// Panics if index is out of the visible range.
func (s Section[T]) At(index int) T {
	if index < 0 || index >= s.Len() {
		panic(fmt.Sprintf("section: index %d out of range with length %d", index, s.Len()))
	}
	return s.buf[s.start+index]
}

// All returns an iterator over the visible part only.
func (s Section[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.buf[s.start:s.end] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Equal reports whether the visible parts of two sections are equal.
// Elements outside the visible ranges are ignored.
func (s Section[T]) Equal(other Section[T]) bool {
	return slices.Equal(s.Slice(), other.Slice())
}

// Compare lexicographically compares the visible parts of two sections.
func (s Section[T]) Compare(other Section[T]) int {
	return slices.Compare(s.Slice(), other.Slice())
}

// Hash returns a hash of the visible part only: two sections with equal
// visible parts hash equally under the same seed, regardless of what the
// rest of their buffers contain.
func (s Section[T]) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	for _, v := range s.buf[s.start:s.end] {
		h.Write(binaryOf(maphash.Comparable(seed, v)))
	}
	return h.Sum64()
}

func binaryOf(v uint64) []byte {
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	return b[:]
}
