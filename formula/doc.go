// Package formula holds the three closed-form index expressions that
// predict cardinality-2 value sets for the reversed Dickson polynomial
// D_n(1, x) over F_p, together with the cubic that generalizes them.
//
// 🚀 What is formula?
//
//	A registry of pure integer functions of p — no dataset, no I/O:
//	  • n1 = (p² + 1)/2      → predicted image {1, p−1}
//	  • n2 = p² − 1          → predicted image {1, 2}
//	  • n3 = (p² + 2p − 1)/2 → predicted image {1, p−1}
//	  • the cubic 4·(n−n1)(n−n2)(n−n3), whose roots are exactly the three
//
// ✨ Exactness contract:
//   - Every evaluation returns a Rational; callers MUST check IsIntegral
//     before using Int. The /2 divisions are exact only because p is odd
//     (p²+1 and p²+2p−1 are then even) — the registry never rounds.
//   - The formulas' documented domain of validity is p > 3. Evaluating
//     elsewhere is allowed (e.g. to observe the p = 2 failure) but
//     predicts nothing.
//
// ⚙️ Usage:
//
//	for _, f := range formula.Registry() {
//	    r := f.Eval(13)
//	    if !r.IsIntegral() { ... }
//	    n := r.Int() // e.g. 85 for n1 at p = 13
//	    want := f.PredictedSet(13)
//	}
//
// The verifier (package verify) consumes this registry as given facts;
// discovery of the formulas by regression is outside this module.
package formula
