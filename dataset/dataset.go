// Package dataset: Build and the ordered, grouped table it produces.
package dataset

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dickson/modular"
	"github.com/katalvlaran/dickson/valueset"
)

// Dataset is the immutable result of one enumeration run: records in
// stable (p asc, n asc, a asc) order plus the lookup surfaces built over
// them. Construct via Build only.
type Dataset struct {
	records []Record
	primes  []int64         // ascending, deduplicated
	bounds  map[int64]int64 // per-prime index bound actually used
}

// Build validates the configuration, runs one value-set sweep per
// (prime, a) pair across at most Parallelism workers, and merges the
// results into a Dataset.
//
// Preconditions and validation (in order):
//  1. At least one prime is configured (ErrNoPrimes).
//  2. Every configured modulus is prime (ErrNotPrime) — fail fast, no
//     auto-correction: a composite modulus would silently poison every
//     downstream field argument.
//  3. Bound(p) is positive for every prime (ErrBadBound), and the
//     resolved parameter list is non-empty (ErrNoParameters).
//
// ctx cancels the run between sweeps; the first failure or cancellation
// aborts the remaining work and is returned.
//
// Complexity: O(p³) per (prime, a) pair at the default full-period
// bound; pairs run concurrently and merge by pre-assigned slot, so the
// output order never depends on scheduling.
func Build(ctx context.Context, opts ...Option) (*Dataset, error) {
	// 1) Fold options over the canonical defaults.
	cfg := DefaultConfig()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate and canonicalize the prime list.
	if len(cfg.Primes) == 0 {
		return nil, ErrNoPrimes
	}
	primes := dedupeSorted(cfg.Primes)
	for _, p := range primes {
		if !modular.IsPrime(p) {
			return nil, fmt.Errorf("%w: %d", ErrNotPrime, p)
		}
	}

	// 3) Resolve per-prime bounds and parameter lists up front, so every
	//    configuration error surfaces before any sweep starts.
	bounds := make(map[int64]int64, len(primes))
	params := make([][]int64, len(primes))
	for i, p := range primes {
		b := cfg.Bound(p)
		if b < 1 {
			return nil, fmt.Errorf("%w: Bound(%d) = %d", ErrBadBound, p, b)
		}
		bounds[p] = b
		params[i] = parameterList(cfg, p)
		if len(params[i]) == 0 {
			return nil, fmt.Errorf("%w: p=%d", ErrNoParameters, p)
		}
	}

	// 4) Fan the independent (prime, a) sweeps out across workers.
	//    Each job owns one pre-assigned result slot; no locks, no
	//    observable merge order.
	type slot struct {
		prime int64
		a     int64
		sets  []valueset.Set
	}
	slots := make([][]slot, len(primes))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, p := range primes {
		slots[i] = make([]slot, len(params[i]))
		for j, a := range params[i] {
			i, j, p, a := i, j, p, a
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				sets, err := valueset.Sweep(p, a, bounds[p])
				if err != nil {
					return fmt.Errorf("dataset: sweep p=%d a=%d: %w", p, a, err)
				}
				slots[i][j] = slot{prime: p, a: a, sets: sets}

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 5) Flatten in the externally guaranteed order:
	//    primes ascending, then n ascending, then a ascending.
	total := 0
	for i, p := range primes {
		total += int(bounds[p]) * len(params[i])
	}
	records := make([]Record, 0, total)
	for i, p := range primes {
		var n int64
		for n = 0; n < bounds[p]; n++ {
			for j := range params[i] {
				s := slots[i][j].sets[n]
				records = append(records, Record{
					P:             p,
					N:             n,
					A:             s.A,
					Cardinality:   s.Cardinality(),
					Values:        s.Values,
					IsPermutation: s.IsPermutation(),
				})
			}
		}
	}

	return &Dataset{records: records, primes: primes, bounds: bounds}, nil
}

// parameterList resolves the a values to sweep for one prime: the whole
// of [0, p) in full-sweep mode, otherwise the configured values
// normalized into [0, p), deduplicated, ascending.
func parameterList(cfg Config, p int64) []int64 {
	if cfg.AllA {
		all := make([]int64, p)
		for i := range all {
			all[i] = int64(i)
		}

		return all
	}

	m := modular.MustNew(p) // p validated prime by Build
	normalized := make([]int64, 0, len(cfg.A))
	for _, a := range cfg.A {
		normalized = append(normalized, m.Normalize(a))
	}

	return dedupeSorted(normalized)
}

// dedupeSorted returns a sorted copy with duplicates collapsed.
func dedupeSorted(in []int64) []int64 {
	out := append([]int64(nil), in...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	k := 0
	for i, v := range out {
		if i == 0 || v != out[k-1] {
			out[k] = v
			k++
		}
	}

	return out[:k]
}

// Records returns the full table in its stable order. The slice and the
// records it holds are read-only by contract.
func (d *Dataset) Records() []Record { return d.records }

// Primes returns the enumerated primes, ascending.
func (d *Dataset) Primes() []int64 { return d.primes }

// Bound returns the index bound actually used for p (0 if p was not
// part of the run).
func (d *Dataset) Bound(p int64) int64 { return d.bounds[p] }

// ByCardinality returns every record whose image has exactly the given
// cardinality, preserving the table order. This is the grouping surface
// the pattern queries (and the verifier's cardinality-2 extraction) use.
func (d *Dataset) ByCardinality(cardinality int64) []Record {
	out := make([]Record, 0)
	for _, r := range d.records {
		if r.Cardinality == cardinality {
			out = append(out, r)
		}
	}

	return out
}

// Card2Indices returns the indices n with a two-element image for the
// given prime and parameter, ascending. a need not be pre-reduced.
func (d *Dataset) Card2Indices(p, a int64) []int64 {
	a = ((a % p) + p) % p
	out := make([]int64, 0, 3)
	for _, r := range d.records {
		if r.P == p && r.A == a && r.Cardinality == 2 {
			out = append(out, r.N)
		}
	}

	return out
}

// Cardinalities returns the distinct cardinalities observed for the
// given prime and parameter, ascending.
func (d *Dataset) Cardinalities(p, a int64) []int64 {
	a = ((a % p) + p) % p
	seen := make(map[int64]bool)
	for _, r := range d.records {
		if r.P == p && r.A == a {
			seen[r.Cardinality] = true
		}
	}
	out := make([]int64, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// PermutationIndices returns the indices n whose image is all of F_p for
// the given prime and parameter, ascending.
func (d *Dataset) PermutationIndices(p, a int64) []int64 {
	a = ((a % p) + p) % p
	out := make([]int64, 0)
	for _, r := range d.records {
		if r.P == p && r.A == a && r.IsPermutation {
			out = append(out, r.N)
		}
	}

	return out
}
