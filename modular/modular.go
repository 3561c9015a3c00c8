// SPDX-License-Identifier: MIT
// Package modular: the Modulus value type and its arithmetic surface.
// All results are reduced into the canonical range [0, p). No method has
// hidden state; a Modulus is safe to copy and share across goroutines.

package modular

import "errors"

// Sentinel errors returned by the modular package.
var (
	// ErrInvalidModulus indicates that the requested modulus is unusable
	// for residue arithmetic (p < 2). Callers that additionally require a
	// field must check IsPrime themselves.
	ErrInvalidModulus = errors.New("modular: modulus must be >= 2")

	// ErrModulusOverflow indicates that the requested modulus is large
	// enough that an int64 product of two reduced residues could wrap.
	ErrModulusOverflow = errors.New("modular: modulus exceeds MaxModulus")
)

// MaxModulus is the largest supported modulus. With p <= MaxModulus every
// product of two residues in [0, p) stays below 2^62, so Mul never
// overflows int64.
const MaxModulus = int64(1) << 31

// Modulus is an immutable arithmetic context for residues mod p.
// The zero value is invalid; construct via New.
type Modulus struct {
	p int64
}

// New validates p and returns an arithmetic context for residues mod p.
//
// Returns ErrInvalidModulus if p < 2 and ErrModulusOverflow if p exceeds
// MaxModulus. Primality is deliberately NOT checked here (see doc.go).
func New(p int64) (Modulus, error) {
	if p < 2 {
		return Modulus{}, ErrInvalidModulus
	}
	if p > MaxModulus {
		return Modulus{}, ErrModulusOverflow
	}

	return Modulus{p: p}, nil
}

// MustNew is New for statically known moduli; it panics on invalid p.
// Reserved for tests, examples and compile-time constants.
func MustNew(p int64) Modulus {
	m, err := New(p)
	if err != nil {
		panic(err.Error())
	}

	return m
}

// P returns the modulus itself.
func (m Modulus) P() int64 { return m.p }

// Normalize maps any int64 (negatives included) to its canonical
// representative in [0, p). Go's % operator keeps the sign of the
// dividend, so a single conditional correction is required.
func (m Modulus) Normalize(v int64) int64 {
	v %= m.p
	if v < 0 {
		v += m.p
	}

	return v
}

// Add returns (a + b) mod p. Inputs need not be pre-reduced.
func (m Modulus) Add(a, b int64) int64 {
	return m.Normalize(m.Normalize(a) + m.Normalize(b))
}

// Sub returns (a - b) mod p. Inputs need not be pre-reduced.
func (m Modulus) Sub(a, b int64) int64 {
	return m.Normalize(m.Normalize(a) - m.Normalize(b))
}

// Mul returns (a * b) mod p. Inputs need not be pre-reduced; reduced
// operands keep the product below 2^62 (see MaxModulus), so the
// multiplication is exact.
func (m Modulus) Mul(a, b int64) int64 {
	return m.Normalize(m.Normalize(a) * m.Normalize(b))
}

// Pow returns base^exp mod p by square-and-multiply in O(log exp)
// multiplications. Exponents of order p² are the routine case for the
// Dickson index formulas and remain cheap.
//
// exp must be non-negative; a negative exponent is a programmer error
// (modular inverses are out of scope) and panics.
func (m Modulus) Pow(base, exp int64) int64 {
	if exp < 0 {
		panic("modular: negative exponent in Pow")
	}

	result := int64(1)
	base = m.Normalize(base)
	for exp > 0 {
		if exp&1 == 1 {
			result = m.Mul(result, base)
		}
		base = m.Mul(base, base)
		exp >>= 1
	}

	return result
}

// GCD returns the non-negative greatest common divisor of a and b via
// the Euclidean algorithm. GCD(0, 0) == 0 by convention.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}
