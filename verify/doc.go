// Package verify certifies the closed-form cardinality-2 formulas
// against a fully enumerated dataset — exactly, with zero tolerance.
//
// 🚀 What is verify?
//
//	The final arbiter above dataset and formula. For every prime p > 3
//	in the table and every registry formula it checks, in order:
//	  1. Integrality — the closed form evaluates to an integer
//	     (recorded, not fatal to the run: one bad (formula, p) pair must
//	     not abort verification of the others).
//	  2. Membership  — that integer is one of the indices the dataset
//	     actually observed with a two-element image. Exact integer
//	     membership across the entire dataset; this is the "RMSE = 0"
//	     requirement, not a statistical fit.
//	  3. Identity    — an independent re-extraction of the value set at
//	     that index equals the predicted set element for element, not
//	     just in cardinality.
//
//	Plus the completeness direction, per prime: the observed
//	cardinality-2 indices, folded into residue classes mod p²−1, form a
//	set of size exactly three equal to the root set of the generalizing
//	cubic — any extra or missing class is a hard failure, never a
//	warning. Tables swept past one full period therefore verify cleanly:
//	the periodic repeats land on the same classes.
//
// ✨ Verdict semantics:
//   - Per-(formula, p) outcomes are isolated and all recorded.
//   - The global verdict is a hard pass/fail with no partial credit:
//     a single violation anywhere flips AllPassed to false.
//   - Reports are rebuilt from scratch on every run; nothing persists.
//
// ⚙️ Usage:
//
//	ds, _ := dataset.Build(ctx, dataset.WithPrimeRange(5, 97))
//	rep, err := verify.Run(ctx, ds)
//	if err != nil { ... }          // structural problem, not a math verdict
//	if !rep.AllPassed { ... }      // at least one exact check failed
package verify
