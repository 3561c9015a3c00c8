// Package polynomial evaluates Dickson polynomials over F_p exactly,
// in both the reversed and the classical first-kind variants.
//
// 🚀 What is polynomial?
//
//	The evaluation engine for the two-term Dickson recurrence:
//	  • Reversed:  D_0(a,x) = 2, D_1(a,x) = a, D_k = a·D_{k-1} − x·D_{k-2}
//	  • Classical: E_0(x,a) = 2, E_1(x,a) = x, E_k = x·E_{k-1} − a·E_{k-2}
//	  • A full row x ∈ [0, p) in one call for the value-set layer
//
// ✨ Key features:
//   - iterative mode: exact O(n) two-term loop, carrying only (D_{k-1}, D_k)
//   - matrix mode: the 2×2 companion matrix [[a, −x], [1, 0]] raised to the
//     n-th power by square-and-multiply — O(log n), the only tractable path
//     when n approaches p²
//   - auto mode (default): picks matrix power once n crosses a threshold
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/dickson/polynomial"
//
//	// D_24(1, 3) mod 5, strategy chosen automatically:
//	v, err := polynomial.Evaluate(24, 1, 3, 5)
//
//	// Force the O(log n) path for a huge index:
//	v, err = polynomial.Evaluate(97*97-1, 1, 3, 97, polynomial.WithMatrixPower())
//
// Performance:
//
//   - Time:   O(n) iterative, O(log n) matrix (8 modular mults per squaring)
//   - Memory: O(1) either way
//
// Determinism: evaluation is a pure function of (n, a, x, p); both modes
// produce bit-identical results, which the tests cross-check.
package polynomial
