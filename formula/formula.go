// Package formula: the registry of closed forms and the generalizing cubic.
package formula

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the formula package.
var (
	// ErrNonIntegral indicates that a closed form evaluated to a non-integer
	// for the given p (possible only outside the odd-prime domain, e.g. p=2).
	ErrNonIntegral = errors.New("formula: closed form is not integral for this p")

	// ErrCoefficientOverflow indicates that the expanded cubic's constant
	// term, of order p⁶, would not fit in an int64 for the given p.
	ErrCoefficientOverflow = errors.New("formula: cubic coefficients overflow int64 for this p")
)

// maxCoefficientPrime bounds CubicCoefficients: the constant term is
// (p²−1)(p²+1)(p²+2p−1) ≈ p⁶, which leaves int64 near p ≈ 1448; 1400
// is a conservative cap with margin. The root set itself (CubicRoots)
// is O(p²) and safe for every modulus modular.New accepts.
const maxCoefficientPrime = int64(1400)

// Rational is an exact quotient Num/Den with Den > 0.
// It exists so that callers are forced to confront integrality
// explicitly instead of relying on silent integer division.
type Rational struct {
	Num int64
	Den int64
}

// IsIntegral reports whether the quotient is an exact integer.
func (r Rational) IsIntegral() bool { return r.Den != 0 && r.Num%r.Den == 0 }

// Int returns the integer value of the quotient. The contract is that
// callers check IsIntegral first; Int panics otherwise, because silently
// truncating would defeat the whole zero-tolerance design.
func (r Rational) Int() int64 {
	if !r.IsIntegral() {
		panic(fmt.Sprintf("formula: Int on non-integral rational %d/%d", r.Num, r.Den))
	}

	return r.Num / r.Den
}

// String renders the quotient, collapsed when integral.
func (r Rational) String() string {
	if r.IsIntegral() {
		return fmt.Sprintf("%d", r.Num/r.Den)
	}

	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// Formula is one closed-form candidate index expression in p, paired
// with the two-element value set it predicts for D_n(1, x) over F_p.
// Both functions are pure; a Formula carries no state.
type Formula struct {
	Name         string                 // short stable identifier: n1, n2, n3
	Expr         string                 // human-readable closed form
	Eval         func(p int64) Rational // exact rational index value
	PredictedSet func(p int64) []int64  // predicted image, sorted ascending
}

// Registry returns the three closed-form formulas, in canonical order.
// The slice is freshly allocated; callers may not assume shared state.
func Registry() []Formula {
	return []Formula{
		{
			Name: "n1",
			Expr: "(p^2 + 1)/2",
			Eval: func(p int64) Rational { return Rational{Num: p*p + 1, Den: 2} },
			PredictedSet: func(p int64) []int64 { return []int64{1, p - 1} },
		},
		{
			Name: "n2",
			Expr: "p^2 - 1",
			Eval: func(p int64) Rational { return Rational{Num: p*p - 1, Den: 1} },
			PredictedSet: func(p int64) []int64 { return []int64{1, 2} },
		},
		{
			Name: "n3",
			Expr: "(p^2 + 2p - 1)/2",
			Eval: func(p int64) Rational { return Rational{Num: p*p + 2*p - 1, Den: 2} },
			PredictedSet: func(p int64) []int64 { return []int64{1, p - 1} },
		},
	}
}

// CubicRoots returns the three formula indices for p, sorted ascending:
// (p²+1)/2 < (p²+2p−1)/2 < p²−1 for every p > 3.
//
// Returns ErrNonIntegral when any closed form is non-integral for p
// (even p), mirroring the per-formula integrality contract.
func CubicRoots(p int64) ([3]int64, error) {
	var roots [3]int64
	n1 := Rational{Num: p*p + 1, Den: 2}
	n3 := Rational{Num: p*p + 2*p - 1, Den: 2}
	if !n1.IsIntegral() || !n3.IsIntegral() {
		return roots, fmt.Errorf("%w: p=%d", ErrNonIntegral, p)
	}
	roots[0] = n1.Int()
	roots[1] = n3.Int()
	roots[2] = p*p - 1

	return roots, nil
}

// CubicCoefficients returns the integer coefficients [c3, c2, c1, c0] of
// the generalizing cubic
//
//	c(n) = 4·(n − n1)(n − n2)(n − n3) = c3·n³ + c2·n² + c1·n + c0,
//
// whose roots are exactly the three formula indices. The factor 4 clears
// the half-integer root products, so the coefficients are integral for
// every odd p. Reported for diagnostics; the verifier works with the
// root set, never with the expansion.
//
// The constant term is of order p⁶: ErrCoefficientOverflow is returned
// for p beyond the int64-exact range (p > 1400).
func CubicCoefficients(p int64) ([4]int64, error) {
	if p > maxCoefficientPrime {
		return [4]int64{}, fmt.Errorf("%w: p=%d", ErrCoefficientOverflow, p)
	}

	// Elementary symmetric functions of the roots, cleared of denominators:
	//   e1 = n1+n2+n3 = 2p² + p − 1
	//   4·e2 = 4·(p²−1)(p²+p) + (p²+1)(p²+2p−1)
	//   4·e3 = (p²−1)(p²+1)(p²+2p−1)
	p2 := p * p
	e1 := 2*p2 + p - 1
	e2x4 := 4*(p2-1)*(p2+p) + (p2+1)*(p2+2*p-1)
	e3x4 := (p2 - 1) * (p2 + 1) * (p2 + 2*p - 1)

	return [4]int64{4, -4 * e1, e2x4, -e3x4}, nil
}
