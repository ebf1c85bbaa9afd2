// Package codec serializes prime tables into a framed binary format.
//
// The format is a fixed header (magic, version, compression, count)
// followed by a delta-encoded payload: the first prime as a raw uvarint
// and every later prime as the uvarint gap to its predecessor. Because
// tables are strictly ascending the gaps are small, which keeps the
// varints short and gives the optional block compression something to
// bite on.
//
// Codec selection is a breaking-change boundary: bytes written with one
// version of the format may not decode with another, which is why both
// the version and the compression algorithm live in the header.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
)

const (
	// MagicNumber identifies a serialized prime table ("PRIM").
	MagicNumber = 0x5052494D
	// Version of the table format.
	Version = 1
)

const headerSize = 4 + 4 + 1 + 7 + 8

var (
	// ErrInvalidMagic means the data does not start with a prime table header.
	ErrInvalidMagic = errors.New("invalid magic number")
	// ErrInvalidVersion means the table was written by an unsupported format version.
	ErrInvalidVersion = errors.New("unsupported version")
	// ErrCorrupt means the payload does not match its header.
	ErrCorrupt = errors.New("corrupt prime table")
)

type options struct {
	compression Compression
	logger      *slog.Logger
}

// Option configures Encode.
type Option func(*options)

// WithCompression selects the payload compression algorithm.
// Defaults to CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger sets the structured logger for encoding stats. Defaults to
// a logger that discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Encode serializes an ascending prime table.
//
// Returns an error if the table is not strictly ascending, since the
// delta encoding cannot represent ties or inversions.
func Encode(primes []uint64, optFns ...Option) ([]byte, error) {
	opts := options{
		compression: CompressionNone,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	payload := make([]byte, 0, len(primes)*2)
	prev := uint64(0)
	for i, p := range primes {
		if i > 0 && p <= prev {
			return nil, fmt.Errorf("table not ascending at index %d: %d after %d", i, p, prev)
		}
		payload = binary.AppendUvarint(payload, p-prev)
		prev = p
	}

	body, err := compressBlock(payload, opts.compression)
	if err != nil {
		return nil, err
	}

	out := make([]byte, headerSize, headerSize+len(body))
	binary.LittleEndian.PutUint32(out[0:], MagicNumber)
	binary.LittleEndian.PutUint32(out[4:], Version)
	out[8] = uint8(opts.compression)
	// Padding [9:16]
	binary.LittleEndian.PutUint64(out[16:], uint64(len(primes)))

	opts.logger.Debug("prime table encoded",
		"count", len(primes),
		"payload_bytes", len(payload),
		"stored_bytes", len(body),
	)
	return append(out, body...), nil
}

// Decode deserializes a prime table written by Encode.
func Decode(data []byte) ([]uint64, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes is too small for a header", ErrCorrupt, len(data))
	}

	if magic := binary.LittleEndian.Uint32(data[0:]); magic != MagicNumber {
		return nil, fmt.Errorf("%w: 0x%08X", ErrInvalidMagic, magic)
	}
	if version := binary.LittleEndian.Uint32(data[4:]); version != Version {
		return nil, fmt.Errorf("%w: %d", ErrInvalidVersion, version)
	}

	compression := Compression(data[8])
	count := binary.LittleEndian.Uint64(data[16:])

	payload, err := decompressBlock(data[headerSize:], compression)
	if err != nil {
		return nil, err
	}

	// The header's count is untrusted; every prime occupies at least one
	// payload byte, so cap the allocation by what the payload can hold.
	capHint := count
	if uint64(len(payload)) < capHint {
		capHint = uint64(len(payload))
	}

	primes := make([]uint64, 0, capHint)
	prev := uint64(0)
	for uint64(len(primes)) < count {
		gap, n := binary.Uvarint(payload)
		if n <= 0 {
			return nil, fmt.Errorf("%w: payload ends after %d of %d primes", ErrCorrupt, len(primes), count)
		}
		payload = payload[n:]

		prev += gap
		primes = append(primes, prev)
	}

	if len(payload) != 0 {
		return nil, fmt.Errorf("%w: %d trailing payload bytes", ErrCorrupt, len(payload))
	}

	return primes, nil
}

// EncodeTable32 serializes a 32-bit prime table, as produced by the
// prime cache.
func EncodeTable32(primes []uint32, optFns ...Option) ([]byte, error) {
	widened := make([]uint64, len(primes))
	for i, p := range primes {
		widened[i] = uint64(p)
	}
	return Encode(widened, optFns...)
}

// DecodeTable32 deserializes a 32-bit prime table. Returns an error if
// any value does not fit in a uint32.
func DecodeTable32(data []byte) ([]uint32, error) {
	primes, err := Decode(data)
	if err != nil {
		return nil, err
	}

	narrowed := make([]uint32, len(primes))
	for i, p := range primes {
		if p > 1<<32-1 {
			return nil, fmt.Errorf("%w: value %d exceeds uint32", ErrCorrupt, p)
		}
		narrowed[i] = uint32(p)
	}
	return narrowed, nil
}
