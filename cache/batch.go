package cache

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Factored is the result of factorizing one number of a batch.
type Factored struct {
	Number uint32
	// Factors holds the cached prime factors with their multiplicities,
	// in ascending order.
	Factors []FactorEntry
	// Remainder is the product of the prime factors beyond the cache's
	// range, or 0 if the number was fully factored.
	Remainder uint32
}

// FactorEntry is one (prime, multiplicity) pair of a factorization.
type FactorEntry struct {
	Prime        uint32
	Multiplicity int
}

type batchOptions struct {
	limit  int
	logger *slog.Logger
}

// BatchOption configures FactorizeBatch.
type BatchOption func(*batchOptions)

// WithLimit caps the number of concurrently running factorizations.
// Defaults to GOMAXPROCS.
func WithLimit(limit int) BatchOption {
	return func(o *batchOptions) {
		if limit > 0 {
			o.limit = limit
		}
	}
}

// WithLogger sets the structured logger for batch progress. Defaults to
// a logger that discards all output.
func WithLogger(logger *slog.Logger) BatchOption {
	return func(o *batchOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// FactorizeBatch factorizes many numbers against the cache concurrently.
//
// The cache is immutable, so the queries are fully independent; they are
// fanned out over a bounded worker group. Results are returned in input
// order. The only error is ctx cancellation.
func (c *Cache) FactorizeBatch(ctx context.Context, numbers []uint32, optFns ...BatchOption) ([]Factored, error) {
	opts := batchOptions{
		limit:  runtime.GOMAXPROCS(0),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	results := make([]Factored, len(numbers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.limit)

	for i, number := range numbers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			res := Factored{Number: number}

			f := c.Factorization(number)
			for prime, multiplicity := range f.All() {
				res.Factors = append(res.Factors, FactorEntry{Prime: prime, Multiplicity: multiplicity})
			}
			if rem, ok := f.Remainder(); ok {
				res.Remainder = rem
			}

			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		opts.logger.ErrorContext(ctx, "batch factorization aborted",
			"total", len(numbers),
			"error", err,
		)
		return nil, err
	}

	opts.logger.DebugContext(ctx, "batch factorization completed",
		"total", len(numbers),
		"workers", opts.limit,
	)
	return results, nil
}
