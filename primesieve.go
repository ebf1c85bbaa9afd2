package primesieve

import (
	"github.com/hupe1980/primesieve/generate"
	"github.com/hupe1980/primesieve/intmath"
	"github.com/hupe1980/primesieve/primality"
	"github.com/hupe1980/primesieve/section"
	"github.com/hupe1980/primesieve/sieve"
)

// MaxPrime is the largest prime that fits in a uint64.
const MaxPrime = primality.MaxPrime

// IsPrime returns whether n is prime, deterministically for all uint64.
func IsPrime(n uint64) bool {
	return primality.IsPrime(n)
}

// NextPrime returns the smallest prime greater than n. ok is false when
// n is at or beyond the largest representable prime.
func NextPrime(n uint64) (uint64, bool) {
	return primality.NextPrime(n)
}

// PreviousPrime returns the largest prime smaller than n. ok is false
// when no smaller prime exists, that is when n <= 2.
func PreviousPrime(n uint64) (uint64, bool) {
	return primality.PreviousPrime(n)
}

// Isqrt returns the integer square root of n: the largest x such that
// x*x <= n.
func Isqrt(n uint64) uint64 {
	return intmath.Isqrt(n)
}

// Primes returns the first n primes in ascending order.
//
// Panics if n <= 0.
func Primes(n int) []uint32 {
	return generate.Primes(n)
}

type options struct {
	logger *Logger
}

// Option configures the auto-budget wrappers.
type Option func(*options)

// WithLogger sets the structured logger for the wrapper calls. Defaults
// to a logger that discards all output.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func applyOptions(optFns []Option) options {
	opts := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return opts
}

// PrimesBelow returns the n largest primes less than limit, deriving
// the sieve budget from the limit.
//
// Panics if n < 0 or if the derived budget is so large that its square
// does not fit in a uint64.
func PrimesBelow(n int, limit uint64, optFns ...Option) (section.Section[uint64], error) {
	opts := applyOptions(optFns)

	mem := budgetFor(n, limit)
	sec, err := generate.LT(n, mem, limit)
	opts.logger.LogGeneration(n, mem, limit, sec.Len(), err)
	return sec, err
}

// PrimesAbove returns the n smallest primes greater than or equal to
// limit, deriving the sieve budget from the limit.
//
// Panics if n < 0 or if the derived budget is so large that its square
// does not fit in a uint64.
func PrimesAbove(n int, limit uint64, optFns ...Option) (section.Section[uint64], error) {
	opts := applyOptions(optFns)

	mem := budgetAboveFor(n, limit)
	sec, err := generate.GEQ(n, mem, limit)
	opts.logger.LogGeneration(n, mem, limit, sec.Len(), err)
	return sec, err
}

// SieveBelow returns primality flags for the n numbers directly below
// limit, deriving the sieve budget from the limit.
//
// Panics if n < 0 or if the derived budget is so large that its square
// does not fit in a uint64.
func SieveBelow(n int, limit uint64, optFns ...Option) ([]bool, error) {
	opts := applyOptions(optFns)

	mem := budgetFor(n, limit)
	flags, err := sieve.LT(n, mem, limit)
	opts.logger.LogSieve(n, mem, limit, err)
	return flags, err
}

// SieveFrom returns primality flags for the n numbers starting at
// limit, deriving the sieve budget from the limit.
//
// Panics if n < 0 or if the derived budget is so large that its square
// does not fit in a uint64.
func SieveFrom(n int, limit uint64, optFns ...Option) ([]bool, error) {
	opts := applyOptions(optFns)

	mem := budgetAboveFor(n, limit)
	flags, err := sieve.GEQ(n, mem, limit)
	opts.logger.LogSieve(n, mem, limit, err)
	return flags, err
}

// budgetFor returns a sieve budget able to certify every value below
// limit: isqrt(limit)+1, raised to n when the output is wider.
func budgetFor(n int, limit uint64) int {
	mem := int(intmath.Isqrt(limit)) + 1
	if mem < n {
		mem = n
	}
	return mem
}

// budgetAboveFor additionally covers the window above limit that an
// ascending query scans through.
func budgetAboveFor(n int, limit uint64) int {
	return int(intmath.Isqrt(limit)) + 1 + n
}
