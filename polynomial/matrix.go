// Minimal 2×2 modular matrix support for the companion-matrix fast
// path. Kept private and fixed-size: the recurrence never needs
// anything larger, and a fixed struct keeps the squaring loop
// allocation-free.

package polynomial

import "github.com/katalvlaran/dickson/modular"

// mat2 is a 2×2 matrix of residues mod p, row-major.
type mat2 struct {
	e00, e01 int64
	e10, e11 int64
}

// mat2Identity returns the multiplicative identity.
func mat2Identity() mat2 {
	return mat2{e00: 1, e01: 0, e10: 0, e11: 1}
}

// matMul returns a·b mod p: 8 modular multiplications, 4 additions.
func matMul(m modular.Modulus, a, b mat2) mat2 {
	return mat2{
		e00: m.Add(m.Mul(a.e00, b.e00), m.Mul(a.e01, b.e10)),
		e01: m.Add(m.Mul(a.e00, b.e01), m.Mul(a.e01, b.e11)),
		e10: m.Add(m.Mul(a.e10, b.e00), m.Mul(a.e11, b.e10)),
		e11: m.Add(m.Mul(a.e10, b.e01), m.Mul(a.e11, b.e11)),
	}
}

// matPow raises base to the exp-th power by square-and-multiply.
// exp must be non-negative; callers in this package guarantee it.
func matPow(m modular.Modulus, base mat2, exp int64) mat2 {
	result := mat2Identity()
	for exp > 0 {
		if exp&1 == 1 {
			result = matMul(m, result, base)
		}
		base = matMul(m, base, base)
		exp >>= 1
	}

	return result
}
