package sieve

import "fmt"

// ErrTooLargeLimit indicates that the requested limit exceeds what the
// chosen memory budget can certify as prime or composite.
//
// Recoverable: retry with a larger mem.
type ErrTooLargeLimit struct {
	Limit  uint64
	MemSqr uint64
}

func (e *ErrTooLargeLimit) Error() string {
	return fmt.Sprintf("limit %d is larger than `mem`^2 (%d)", e.Limit, e.MemSqr)
}

// ErrTooSmallLimit indicates that the requested upper bound leaves no
// room for the requested number of results.
//
// Recoverable: retry with a larger limit or a smaller result size.
type ErrTooSmallLimit struct {
	Limit uint64
	Min   uint64
}

func (e *ErrTooSmallLimit) Error() string {
	return fmt.Sprintf("limit %d is smaller than the minimum %d", e.Limit, e.Min)
}

// ErrTotalDoesntFitU64 indicates that lowerLimit + mem overflows a uint64,
// so the window bound cannot be assembled.
//
// Recoverable: retry with a smaller limit or budget.
type ErrTotalDoesntFitU64 struct {
	Limit uint64
	Mem   int
}

func (e *ErrTotalDoesntFitU64) Error() string {
	return fmt.Sprintf("limit %d plus `mem` %d does not fit in a uint64", e.Limit, e.Mem)
}
