// SPDX-License-Identifier: MIT
// Package modular: primality helpers for the small moduli this module
// operates on. Trial division is deliberate: the sweeps use primes below
// a few hundred, where it beats any probabilistic machinery.

package modular

// IsPrime reports whether n is prime, by trial division up to √n.
//
// Complexity: O(√n). Intended for the small moduli of the dataset sweeps;
// for n <= MaxModulus the worst case is still ~46k divisions.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n < 4 {
		return true // 2 and 3
	}
	if n%2 == 0 {
		return false
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// PrimesInRange returns all primes p with lo <= p <= hi, ascending.
// An empty (never nil) slice is returned when the range holds no prime.
func PrimesInRange(lo, hi int64) []int64 {
	primes := make([]int64, 0)
	if lo < 2 {
		lo = 2
	}
	for n := lo; n <= hi; n++ {
		if IsPrime(n) {
			primes = append(primes, n)
		}
	}

	return primes
}
