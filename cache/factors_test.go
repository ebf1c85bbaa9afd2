package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorization(t *testing.T) {
	c := New(3) // [2 3 5]

	f := c.Factorization(3 * 3 * 5 * 7)

	prime, multiplicity, ok := f.Next()
	require.True(t, ok)
	assert.Equal(t, uint32(3), prime)
	assert.Equal(t, 2, multiplicity)

	prime, multiplicity, ok = f.Next()
	require.True(t, ok)
	assert.Equal(t, uint32(5), prime)
	assert.Equal(t, 1, multiplicity)

	// 7 is beyond the cache.
	_, _, ok = f.Next()
	assert.False(t, ok)
}

func TestFactorizationRemainder(t *testing.T) {
	c := New(3) // [2 3 5]

	// 294 = 2 * 3 * 7 * 7; only 2 and 3 are cached.
	f := c.Factorization(294)

	var entries []FactorEntry
	for prime, multiplicity := range f.All() {
		entries = append(entries, FactorEntry{Prime: prime, Multiplicity: multiplicity})
	}
	assert.Equal(t, []FactorEntry{{2, 1}, {3, 1}}, entries)

	rem, incomplete := f.Remainder()
	assert.True(t, incomplete)
	assert.Equal(t, uint32(49), rem)
}

func TestFactorizationComplete(t *testing.T) {
	c := New(5) // [2 3 5 7 11]

	f := c.Factorization(2 * 2 * 7 * 11)
	_, incomplete := f.Remainder()
	assert.False(t, incomplete)
}

func TestFactorizationDegenerate(t *testing.T) {
	c := New(3)

	for _, n := range []uint32{0, 1} {
		f := c.Factorization(n)
		_, _, ok := f.Next()
		assert.False(t, ok, "Factorization(%d).Next()", n)

		_, incomplete := c.Factorization(n).Remainder()
		assert.False(t, incomplete, "Factorization(%d).Remainder()", n)
	}
}

func TestFactors(t *testing.T) {
	c := New(3) // [2 3 5]

	f := c.Factors(2 * 2 * 3 * 3 * 5 * 7)

	var distinct []uint32
	for p := range f.All() {
		distinct = append(distinct, p)
	}
	assert.Equal(t, []uint32{2, 3, 5}, distinct)

	rem, incomplete := f.Remainder()
	assert.True(t, incomplete)
	assert.Equal(t, uint32(7), rem)
}

func TestFactorsComplete(t *testing.T) {
	c := New(3)

	f := c.Factors(2 * 3 * 5)
	_, incomplete := f.Remainder()
	assert.False(t, incomplete)
}

func TestFactorizeBatch(t *testing.T) {
	c := New(3) // [2 3 5]

	numbers := []uint32{294, 30, 49, 1}
	results, err := c.FactorizeBatch(context.Background(), numbers, WithLimit(2))
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, Factored{
		Number:    294,
		Factors:   []FactorEntry{{2, 1}, {3, 1}},
		Remainder: 49,
	}, results[0])

	assert.Equal(t, Factored{
		Number:  30,
		Factors: []FactorEntry{{2, 1}, {3, 1}, {5, 1}},
	}, results[1])

	assert.Equal(t, Factored{
		Number:    49,
		Remainder: 49,
	}, results[2])

	assert.Equal(t, Factored{Number: 1}, results[3])
}

func TestFactorizeBatchEmpty(t *testing.T) {
	c := New(3)

	results, err := c.FactorizeBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestFactorizeBatchCanceled(t *testing.T) {
	c := New(3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FactorizeBatch(ctx, []uint32{6, 10, 15})
	assert.ErrorIs(t, err, context.Canceled)
}
