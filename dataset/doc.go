// Package dataset enumerates reversed Dickson value sets across a
// configured list of primes and assembles them into an ordered,
// reproducible table of records.
//
// 🚀 What is dataset?
//
//	The driver layer above valueset:
//	  • Config — prime list (or range), per-prime index bound, parameter a
//	  • Build  — validates, fans the per-(p, a) sweeps out across workers,
//	    and merges into one table sorted (p asc, n asc, a asc)
//	  • Grouping — cardinality-keyed views for downstream pattern queries
//	  • WriteCSV — the stable row-oriented collaborator surface
//
// ✨ Key guarantees:
//   - Fail fast: a non-prime in the configured list aborts construction
//     (ErrNotPrime) before any arithmetic happens — every downstream
//     argument assumes a field.
//   - Determinism: identical Config yields byte-identical record order
//     and byte-identical CSV; workers write into pre-assigned slots, so
//     no merge order is observable.
//   - Records are read-only after Build.
//
// ⚙️ Usage:
//
//	ds, err := dataset.Build(ctx,
//	    dataset.WithPrimeRange(3, 97),
//	    dataset.WithParallelism(8),
//	)
//	card2 := ds.Card2Indices(13, 1) // → [85, 97, 168] for p = 13
//
// Performance:
//
//   - One full-period sweep costs O(p³) per prime (see valueset.Sweep);
//     primes are independent and run concurrently, bounded by
//     Parallelism. Aggregation is a slot write, no locks.
package dataset
