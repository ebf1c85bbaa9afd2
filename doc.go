// Package primesieve generates, sieves, tests and caches prime numbers.
//
// All algorithms work purely in-memory and allocate buffers sized by
// explicit parameters, so the memory usage of a query is decoupled from
// the magnitude of the numbers involved.
//
// # Quick Start
//
// Primality and neighbors:
//
//	primesieve.IsPrime(1_000_000_007)         // true, deterministic for all uint64
//	next, ok := primesieve.NextPrime(1_000)   // 1009, true
//
// The first N primes:
//
//	primes := primesieve.Primes(10)           // [2 3 5 7 11 13 17 19 23 29]
//
// Primes near an arbitrary limit, with the sieve size derived from the
// limit automatically:
//
//	below, _ := primesieve.PrimesBelow(4, 100)   // [79 83 89 97]
//	above, _ := primesieve.PrimesAbove(5, 40)    // [41 43 47 53 59]
//
// # Memory Budget
//
// The lower-level packages take an explicit budget: a query with budget
// mem sieves windows of mem numbers at a time and can certify any value
// below mem². This decouples the number of results from the magnitude
// of the values:
//
//	// 3 primes just under one million, sieving only 1000 numbers at a time.
//	sec, _ := generate.LT(3, 1_000, 1_000_000)
//
// Results are returned as a section: a buffer plus the half-open range
// of it that holds valid primes, so partially filled queries are
// explicit rather than zero-padded.
//
// # Key Packages
//
//   - primality: deterministic Miller-Rabin for all uint64
//   - sieve: base and segmented sieves of Eratosthenes, windowed queries
//   - generate: prime generation above or below arbitrary limits
//   - cache: an immutable table of the first n primes with binary-search
//     queries, factorization and totient
//   - codec: compressed serialization of prime tables
package primesieve
