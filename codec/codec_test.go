package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/primesieve/generate"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		primes      []uint64
		compression Compression
	}{
		{"empty/none", nil, CompressionNone},
		{"small/none", []uint64{2, 3, 5, 7, 11}, CompressionNone},
		{"small/lz4", []uint64{2, 3, 5, 7, 11}, CompressionLZ4},
		{"small/zstd", []uint64{2, 3, 5, 7, 11}, CompressionZSTD},
		{"large gaps/zstd", []uint64{2, 1<<32 + 15, 1<<62 + 57}, CompressionZSTD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Encode(tt.primes, WithCompression(tt.compression))
			require.NoError(t, err)

			decoded, err := Decode(data)
			require.NoError(t, err)

			if len(tt.primes) == 0 {
				assert.Empty(t, decoded)
			} else {
				assert.Equal(t, tt.primes, decoded)
			}
		})
	}
}

func TestRoundTripSievedTable(t *testing.T) {
	table := make([]uint64, 0, 1_000)
	for _, p := range generate.Primes(1_000) {
		table = append(table, uint64(p))
	}

	for _, compression := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		data, err := Encode(table, WithCompression(compression))
		require.NoError(t, err)

		decoded, err := Decode(data)
		require.NoError(t, err)
		assert.Equal(t, table, decoded)
	}
}

func TestEncodeRejectsUnsortedTables(t *testing.T) {
	_, err := Encode([]uint64{2, 5, 3})
	assert.Error(t, err)

	_, err = Encode([]uint64{2, 2})
	assert.Error(t, err)
}

func TestDecodeRejectsBadHeaders(t *testing.T) {
	valid, err := Encode([]uint64{2, 3, 5})
	require.NoError(t, err)

	t.Run("truncated header", func(t *testing.T) {
		_, err := Decode(valid[:10])
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("bad magic", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[0] ^= 0xFF
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("bad version", func(t *testing.T) {
		data := append([]byte(nil), valid...)
		data[4] = 99
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("truncated payload", func(t *testing.T) {
		_, err := Decode(valid[:len(valid)-1])
		assert.ErrorIs(t, err, ErrCorrupt)
	})

	t.Run("hostile count", func(t *testing.T) {
		// A header may claim far more primes than the payload can hold;
		// decoding must fail without allocating for the claimed count.
		data := append([]byte(nil), valid...)
		binary.LittleEndian.PutUint64(data[16:], 1<<40)
		_, err := Decode(data)
		assert.ErrorIs(t, err, ErrCorrupt)
	})
}

func TestTable32(t *testing.T) {
	table := generate.Primes(100)

	data, err := EncodeTable32(table, WithCompression(CompressionLZ4))
	require.NoError(t, err)

	decoded, err := DecodeTable32(data)
	require.NoError(t, err)
	assert.Equal(t, table, decoded)
}

func TestDecodeTable32Overflow(t *testing.T) {
	data, err := Encode([]uint64{2, 1 << 33})
	require.NoError(t, err)

	_, err = DecodeTable32(data)
	assert.ErrorIs(t, err, ErrCorrupt)
}
