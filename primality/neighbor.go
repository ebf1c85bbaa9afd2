package primality

// NextPrime returns the smallest prime greater than n, and false if no
// such prime fits in a uint64.
//
// Scans upwards from n with IsPrime. The largest prime gap below 2^64 is
// small enough that the scan always terminates quickly.
func NextPrime(n uint64) (uint64, bool) {
	if n >= MaxPrime {
		return 0, false
	}

	if n <= 1 {
		return 2, true
	}

	n++
	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n, true
}

// PreviousPrime returns the largest prime smaller than n, and false if
// there is none (n <= 2).
//
// Scans downwards from n with IsPrime.
func PreviousPrime(n uint64) (uint64, bool) {
	if n <= 2 {
		return 0, false
	}

	if n == 3 {
		return 2, true
	}

	n--
	if n%2 == 0 {
		n--
	}

	for !IsPrime(n) {
		n -= 2
	}

	return n, true
}
