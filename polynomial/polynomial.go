// Package polynomial: reversed and classical Dickson evaluation mod p.
//
// Both variants share one engine: a linear two-term recurrence
//
//	T_0 = 2,  T_1 = c,  T_k = c·T_{k-1} − s·T_{k-2}  (mod p)
//
// with (c, s) = (a, x) for the reversed variant D_n(a, x) and
// (c, s) = (x, a) for the classical variant E_n(x, a).
package polynomial

import (
	"github.com/katalvlaran/dickson/modular"
)

// Evaluate computes the reversed Dickson polynomial D_n(a, x) mod p.
//
// Preconditions and validation (in order):
//  1. p must be a usable modulus (modular.ErrInvalidModulus / ErrModulusOverflow).
//  2. n must be non-negative (ErrNegativeIndex).
//
// a and x need not be pre-reduced; they are normalized into [0, p).
// The result is always in [0, p).
//
// Complexity: O(n) in iterative mode, O(log n) in matrix mode; Auto mode
// (the default) switches to matrix power once n exceeds the threshold.
func Evaluate(n, a, x, p int64, opts ...Option) (int64, error) {
	m, err := modular.New(p)
	if err != nil {
		return 0, err
	}

	return evaluate(m, n, a, x, buildOptions(opts))
}

// EvaluateClassical computes the classical first-kind Dickson polynomial
// E_n(x, a) mod p: E_0 = 2, E_1 = x, E_k = x·E_{k-1} − a·E_{k-2}.
//
// Validation and complexity are identical to Evaluate; the two variants
// differ only in which argument multiplies and which subtracts.
func EvaluateClassical(n, x, a, p int64, opts ...Option) (int64, error) {
	m, err := modular.New(p)
	if err != nil {
		return 0, err
	}

	// Classical is the shared recurrence with the argument roles swapped.
	return evaluate(m, n, x, a, buildOptions(opts))
}

// Row computes D_n(a, x) mod p for every x in [0, p) and returns the
// p results indexed by x. This is the per-index unit of work for the
// value-set layer.
//
// Complexity: O(p·log n) with the matrix path (the Auto default for the
// large indices the formulas produce), O(p·n) fully iterative.
func Row(n, a, p int64, opts ...Option) ([]int64, error) {
	m, err := modular.New(p)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, ErrNegativeIndex
	}

	cfg := buildOptions(opts)
	row := make([]int64, p)
	var x int64
	for x = 0; x < p; x++ {
		// evaluate never fails past the validation above; inline the core.
		row[x], err = evaluate(m, n, a, x, cfg)
		if err != nil {
			return nil, err
		}
	}

	return row, nil
}

// buildOptions folds functional options over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// evaluate runs the shared two-term recurrence T_0=2, T_1=c,
// T_k = c·T_{k-1} − s·T_{k-2} mod p, dispatching on strategy.
func evaluate(m modular.Modulus, n, c, s int64, cfg Options) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeIndex
	}

	// Base cases are exact regardless of strategy: T_0 = 2, T_1 = c.
	switch n {
	case 0:
		return m.Normalize(2), nil
	case 1:
		return m.Normalize(c), nil
	}

	switch cfg.Mode {
	case ModeIterative:
		return evalIterative(m, n, c, s), nil
	case ModeMatrixPower:
		return evalMatrix(m, n, c, s), nil
	default: // ModeAuto
		if n > cfg.MatrixThreshold {
			return evalMatrix(m, n, c, s), nil
		}

		return evalIterative(m, n, c, s), nil
	}
}

// evalIterative advances the recurrence step by step, carrying only the
// last two terms (T_{k-1}, T_k). O(n) modular multiply-adds, O(1) memory.
func evalIterative(m modular.Modulus, n, c, s int64) int64 {
	c = m.Normalize(c)
	s = m.Normalize(s)

	prev2 := m.Normalize(2) // T_{k-2}, starts at T_0
	prev1 := c              // T_{k-1}, starts at T_1
	var k int64
	for k = 2; k <= n; k++ {
		prev2, prev1 = prev1, m.Sub(m.Mul(c, prev1), m.Mul(s, prev2))
	}

	return prev1
}

// evalMatrix computes T_n through the companion matrix
//
//	M = | c  −s |
//	    | 1   0 |
//
// which advances the state vector: (T_k, T_{k-1})ᵀ = M·(T_{k-1}, T_{k-2})ᵀ.
// Hence (T_n, T_{n-1})ᵀ = M^(n-1)·(T_1, T_0)ᵀ and
//
//	T_n = (M^(n-1))_00·c + (M^(n-1))_01·2.
//
// M^(n-1) is computed by square-and-multiply: O(log n) 2×2 modular
// multiplications. Callers guarantee n >= 2.
func evalMatrix(m modular.Modulus, n, c, s int64) int64 {
	c = m.Normalize(c)
	pw := matPow(m, mat2{
		e00: c, e01: m.Sub(0, s),
		e10: 1, e11: 0,
	}, n-1)

	return m.Add(m.Mul(pw.e00, c), m.Mul(pw.e01, 2))
}
