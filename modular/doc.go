// SPDX-License-Identifier: MIT
// Package modular implements exact integer arithmetic modulo a prime p,
// the leaf layer every other package in this module is built on.
//
// 🚀 What is modular?
//
//	A tiny, allocation-free arithmetic core over F_p:
//	  • Add / Sub / Mul — reduced into the canonical range [0, p)
//	  • Pow            — square-and-multiply, exponents up to p² and beyond
//	  • Normalize      — canonical representative of any int64, negatives included
//	  • IsPrime / PrimesInRange / GCD — the number-theoretic helpers the
//	    dataset and investigation layers need
//
// ✨ Key guarantees:
//   - Exactness: integer arithmetic only; no floats anywhere.
//   - Purity: a Modulus is immutable after New; every method is a pure
//     function of its arguments.
//   - Safety: New rejects p < 2 (ErrInvalidModulus) and p large enough to
//     overflow int64 products (ErrModulusOverflow), so Mul never wraps.
//
// ⚙️ Usage:
//
//	m, err := modular.New(97)
//	if err != nil { ... }
//	v := m.Pow(3, 97*97) // exponents of order p² are the common case here
//
// Complexity:
//
//   - Add/Sub/Mul/Normalize: O(1)
//   - Pow:                   O(log exponent) multiplications
//   - IsPrime:               O(√n) trial division (moduli here are small)
//
// The component does not verify primality of p itself: callers that need
// a field (not just a ring) must check IsPrime, as dataset.Build does.
package modular
