// Package valueset extracts the image of x ↦ D_n(a, x) over the whole
// field F_p — the "value set" — and its cardinality.
//
// 🚀 What is valueset?
//
//	The deduplication layer between raw evaluation and the dataset:
//	  • Extract — one (p, n, a) triple: sweep all p residues, dedupe, sort
//	  • Sweep   — every index n in [0, bound) in a single pass, advancing
//	    the whole evaluation row by the recurrence (rolling column vectors)
//
// ✨ Key guarantees:
//   - Values are always sorted ascending and deduplicated; identical
//     inputs yield identical slices, with no map-iteration order anywhere
//     near the observable result.
//   - 1 <= cardinality <= p for every valid input.
//   - A Set is never mutated after construction.
//
// ⚙️ Usage:
//
//	s, err := valueset.Extract(5, 24, 1)
//	// s.Values = [1 2], s.Cardinality() = 2
//
//	sets, err := valueset.Sweep(5, 1, 25) // n = 0..24 in one pass
//
// Performance:
//
//   - Extract: O(p·log n) evaluator calls via the matrix fast path.
//   - Sweep:   O(p) per index — two column vectors (D_{n-1}, D_n) advance
//     together, so a full period costs O(p³) per prime instead of the
//     O(p³·log p) of repeated Extract calls.
package valueset
