package generate

import (
	"errors"
	"fmt"
)

// ErrOutOfPrimes is returned by LTStrict when fewer primes exist below
// the limit than were requested.
var ErrOutOfPrimes = errors.New("ran out of primes before the array was filled")

// ErrSieveOverrun is returned by GEQStrict when the generation reached a
// candidate at or beyond mem², which the working sieve cannot certify.
//
// Recoverable: retry with a larger mem.
type ErrSieveOverrun struct {
	// Value is the first candidate that left the certified range.
	Value uint64
}

func (e *ErrSieveOverrun) Error() string {
	return fmt.Sprintf("encountered the number %d which the sieve budget cannot certify", e.Value)
}
