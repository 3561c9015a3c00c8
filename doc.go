// Package dickson is an exact finite-field laboratory for reversed
// Dickson polynomials — from modular primitives to full value-set
// datasets and zero-tolerance formula verification.
//
// 🚀 What is dickson?
//
//	A deterministic, exact-arithmetic library that brings together:
//		• Modular primitives: add, sub, mul, square-and-multiply pow over F_p
//		• Evaluation: D_n(a,x) via the two-term recurrence or O(log n) matrix power
//		• Value sets: the image of x ↦ D_n(a,x) over all of F_p, deduplicated & sorted
//		• Datasets: full (p, n, a) sweeps across prime lists, built in parallel
//		• Formulas: the three closed-form cardinality-2 indices and their cubic
//		• Verification: exact membership + value-set identity, zero tolerance
//
// ✨ Why choose dickson?
//
//   - Exact by construction – integer arithmetic only, no floats, no rounding
//   - Reproducible – identical inputs always yield identical sorted output
//   - Parallel where it matters – per-prime sweeps fan out across workers
//   - Pure Go core – the library packages carry no I/O and no hidden state
//
// Everything is organized under focused subpackages:
//
//	modular/     — exact arithmetic mod p: Add, Sub, Mul, Pow, IsPrime, GCD
//	polynomial/  — reversed & classical Dickson evaluation, fast matrix power
//	valueset/    — image extraction and full-period sweeps over F_p
//	dataset/     — configurable (p, n, a) enumeration into ordered records
//	formula/     — the three closed forms (p²+1)/2, p²−1, (p²+2p−1)/2
//	verify/      — exact formula verification against the enumerated data
//	investigate/ — cardinality coverage, permutation indices, parameter-a sweeps
//	cmd/dickson  — CLI: generate CSV tables, verify, investigate
//
// Quick sketch for p = 5:
//
//	n = 13 → value set {1, 4}
//	n = 17 → value set {1, 4}
//	n = 24 → value set {1, 2}
//
//	and no other index in [0, 25) has a two-element image.
//
// Dive into the per-package doc.go files for the full contracts,
// complexity notes and worked examples.
//
//	go get github.com/katalvlaran/dickson
package dickson
