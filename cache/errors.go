package cache

import "fmt"

// PartialTotientError carries the result of a partially successful
// totient evaluation: the cache ran out of primes before the number was
// fully factored.
//
// Not a bug but an explicit "incomplete answer": the caller can extend
// the cache and retry, or combine the two fields itself.
type PartialTotientError struct {
	// TotientUsingKnownPrimes is the totient of the part of the number
	// that was factored with cached primes.
	TotientUsingKnownPrimes uint32
	// ProductOfUnknownPrimeFactors is the residual product of the prime
	// factors beyond the cache's range.
	ProductOfUnknownPrimeFactors uint32
}

func (e *PartialTotientError) Error() string {
	return fmt.Sprintf(
		"the cache did not contain all prime factors: totient of the known part is %d, product of the unknown factors is %d",
		e.TotientUsingKnownPrimes, e.ProductOfUnknownPrimeFactors,
	)
}
