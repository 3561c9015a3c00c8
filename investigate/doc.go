// Package investigate answers the exploratory questions around the
// cardinality dataset: coverage, permutation structure, and the effect
// of the polynomial parameter a.
//
// 🚀 What is investigate?
//
//	Read-only pattern queries over an enumerated dataset:
//	  • CardinalityCoverage — which cardinalities in {1..p−1} actually
//	    occur per prime, which are missing, and whether permutation
//	    indices (cardinality p) exist at all
//	  • MissingPatterns — each absent cardinality tagged with divisor
//	    relationships (p−1, p+1, p²−1), parity, the (p∓1)/2 half-points,
//	    and the prime's residue classes mod 4 and 6, for cross-prime
//	    pattern comparison
//	  • PermutationCriterion — the observed permutation indices versus
//	    the classical gcd(n, p²−1) = 1 prediction; for the REVERSED
//	    variant the two measurably diverge, and this reports the facts
//	    rather than assuming the criterion
//	  • ParameterVariation — a full a ∈ [0, p) sweep for one prime,
//	    summarizing cardinality-2 counts and permutation counts per a;
//	    a = 0 is degenerate (odd rows vanish) and its cardinality-2
//	    count jumps to (p+1)/2, against exactly 3 for every a ≠ 0
//
// ✨ Scope note:
//
//	Everything here is measured, never assumed: the a-generalized
//	behavior is an empirically verified property surfaced for study,
//	not an invariant other packages may rely on.
//
// ⚙️ Usage:
//
//	ds, _ := dataset.Build(ctx, dataset.WithPrimeRange(5, 97))
//	cov := investigate.CardinalityCoverage(ds)
//	perm := investigate.PermutationCriterion(ds)
//	byA, _ := investigate.ParameterVariation(ctx, 13)
package investigate
