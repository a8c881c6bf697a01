package hash

import "math"

// AbsKey - Returns the absolute value of key, guarding the one value that has no positive
// counterpart in two's complement. Taking the absolute value before any modulus is a correctness
// requirement, a negative remainder would index outside the table.
func AbsKey(key int64) int64 {
	if key == math.MinInt64 {
		return math.MaxInt64
	}
	if key < 0 {
		return -key
	}
	return key
}

// NearestPrimeAtOrAbove - Returns the nearest prime number equal to or higher than n.
// Probe sequences iterate over the entirety of the table once and only once when the table size
// is prime, so all table sizes are adjusted through this function at construction.
func NearestPrimeAtOrAbove(n int64) int64 {
OUTER:
	for {
		if n == 2 || n == 3 {
			return n
		}

		if n <= 1 || n%2 == 0 || n%3 == 0 {
			n++
			continue
		}

		for i := int64(5); i*i <= n; i += 6 {
			if n%i == 0 || n%(i+2) == 0 {
				n++
				continue OUTER
			}
		}

		return n
	}
}

// LargestPrimeBelow - Returns the largest prime number strictly less than n, or 0 if none exists.
// Used to pick the secondary prime for Double Hashing.
func LargestPrimeBelow(n int64) int64 {
	for p := n - 1; p >= 2; p-- {
		if isPrime(p) {
			return p
		}
	}

	return 0
}

// isPrime - Primality test by trial division, sufficient for the table sizes in use
func isPrime(n int64) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n <= 1 || n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
