package primesieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPrime(t *testing.T) {
	assert.True(t, IsPrime(2))
	assert.True(t, IsPrime(1_000_000_007))
	assert.True(t, IsPrime(MaxPrime))
	assert.False(t, IsPrime(1))
	assert.False(t, IsPrime(1_000_000_000))
}

func TestNeighbors(t *testing.T) {
	next, ok := NextPrime(1_000)
	assert.True(t, ok)
	assert.Equal(t, uint64(1009), next)

	prev, ok := PreviousPrime(1_000)
	assert.True(t, ok)
	assert.Equal(t, uint64(997), prev)

	_, ok = NextPrime(MaxPrime)
	assert.False(t, ok)
}

func TestIsqrt(t *testing.T) {
	assert.Equal(t, uint64(10), Isqrt(100))
	assert.Equal(t, uint64(10), Isqrt(120))
	assert.Equal(t, uint64(11), Isqrt(121))
}

func TestPrimes(t *testing.T) {
	assert.Equal(t, []uint32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, Primes(10))
}

func TestPrimesBelow(t *testing.T) {
	sec, err := PrimesBelow(4, 100)
	require.NoError(t, err)
	require.True(t, sec.Complete())
	assert.Equal(t, []uint64{79, 83, 89, 97}, sec.Slice())

	// The budget is derived from the limit, so large limits work with
	// small outputs.
	sec, err = PrimesBelow(3, 1_000_000)
	require.NoError(t, err)
	require.True(t, sec.Complete())
	assert.Equal(t, []uint64{999_961, 999_979, 999_983}, sec.Slice())
}

func TestPrimesAbove(t *testing.T) {
	sec, err := PrimesAbove(5, 40)
	require.NoError(t, err)
	require.True(t, sec.Complete())
	assert.Equal(t, []uint64{41, 43, 47, 53, 59}, sec.Slice())

	sec, err = PrimesAbove(3, 1_000_000)
	require.NoError(t, err)
	require.True(t, sec.Complete())
	assert.Equal(t, []uint64{1_000_003, 1_000_033, 1_000_037}, sec.Slice())
}

func TestSieveBelow(t *testing.T) {
	flags, err := SieveBelow(5, 13)
	require.NoError(t, err)
	// Window [8, 13): 8 9 10 11 12.
	assert.Equal(t, []bool{false, false, false, true, false}, flags)
}

func TestSieveFrom(t *testing.T) {
	flags, err := SieveFrom(5, 10)
	require.NoError(t, err)
	// Window [10, 15): 10 11 12 13 14.
	assert.Equal(t, []bool{false, true, false, true, false}, flags)
}

func TestZeroCount(t *testing.T) {
	// A request for zero results is valid; only negative counts panic.
	sec, err := PrimesBelow(0, 100)
	require.NoError(t, err)
	assert.True(t, sec.Complete())
	assert.Empty(t, sec.Slice())

	sec, err = PrimesAbove(0, 100)
	require.NoError(t, err)
	assert.Empty(t, sec.Slice())

	flags, err := SieveBelow(0, 100)
	require.NoError(t, err)
	assert.Empty(t, flags)

	flags, err = SieveFrom(0, 100)
	require.NoError(t, err)
	assert.Empty(t, flags)

	assert.Panics(t, func() { _, _ = PrimesBelow(-1, 100) })
}

func TestGeneratedPrimesAreCertified(t *testing.T) {
	sec, err := PrimesAbove(10, 7_900)
	require.NoError(t, err)
	require.True(t, sec.Complete())

	prev := uint64(0)
	for _, p := range sec.Slice() {
		assert.True(t, IsPrime(p), "value %d", p)
		assert.Greater(t, p, prev)
		assert.GreaterOrEqual(t, p, uint64(7_900))
		prev = p
	}
}
