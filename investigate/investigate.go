// Package investigate: coverage, permutation and parameter-a queries.
package investigate

import (
	"context"

	"github.com/katalvlaran/dickson/dataset"
	"github.com/katalvlaran/dickson/modular"
)

// canonicalA is the parameter the coverage and permutation queries
// examine; the parameter study sweeps all of [0, p) instead.
const canonicalA = int64(1)

// Coverage summarizes which image cardinalities occur for one prime.
type Coverage struct {
	P              int64   // prime under study (> 3)
	Observed       []int64 // distinct cardinalities seen, ascending
	Missing        []int64 // members of {1..p−1} never observed, ascending
	HasPermutation bool    // cardinality p observed at least once
	CoveragePct    float64 // |observed ∩ {1..p−1}| / (p−1) · 100
}

// CardinalityCoverage reports, for every prime p > 3 in the dataset,
// how much of the candidate range {1..p−1} the observed cardinalities
// cover. Results ascend by prime.
func CardinalityCoverage(ds *dataset.Dataset) []Coverage {
	out := make([]Coverage, 0, len(ds.Primes()))
	for _, p := range ds.Primes() {
		if p <= 3 {
			continue
		}

		observed := ds.Cardinalities(p, canonicalA)
		present := make(map[int64]bool, len(observed))
		hasPerm := false
		for _, c := range observed {
			present[c] = true
			if c == p {
				hasPerm = true
			}
		}

		missing := make([]int64, 0)
		hits := 0
		var c int64
		for c = 1; c < p; c++ {
			if present[c] {
				hits++
			} else {
				missing = append(missing, c)
			}
		}

		out = append(out, Coverage{
			P:              p,
			Observed:       observed,
			Missing:        missing,
			HasPermutation: hasPerm,
			CoveragePct:    100 * float64(hits) / float64(p-1),
		})
	}

	return out
}

// MissingCardinality tags one absent cardinality with the arithmetic
// attributes the pattern analysis looks at: divisor relationships to
// p−1, p+1 and the period p²−1, parity, and the two half-point values.
type MissingCardinality struct {
	Cardinality    int64 // the absent value, in {1..p−1}
	DividesPMinus1 bool  // Cardinality | p−1
	DividesPPlus1  bool  // Cardinality | p+1
	DividesPeriod  bool  // Cardinality | p²−1
	Even           bool
	IsHalfPMinus1  bool // Cardinality == (p−1)/2
	IsHalfPPlus1   bool // Cardinality == (p+1)/2
}

// MissingPattern groups the tagged gaps of one prime together with the
// residue classes the cross-prime comparison is keyed on.
type MissingPattern struct {
	P       int64 // prime under study (> 3)
	PMod4   int64
	PMod6   int64
	Missing []MissingCardinality // ascending by Cardinality, never empty
}

// MissingPatterns reports, for every prime p > 3 whose observed
// cardinalities do not cover all of {1..p−1}, each absent value tagged
// with its divisor and residue-class attributes. Primes with full
// coverage contribute no entry. Results ascend by prime.
func MissingPatterns(ds *dataset.Dataset) []MissingPattern {
	out := make([]MissingPattern, 0)
	for _, cov := range CardinalityCoverage(ds) {
		if len(cov.Missing) == 0 {
			continue
		}

		p := cov.P
		tagged := make([]MissingCardinality, 0, len(cov.Missing))
		for _, m := range cov.Missing {
			tagged = append(tagged, MissingCardinality{
				Cardinality:    m,
				DividesPMinus1: (p-1)%m == 0,
				DividesPPlus1:  (p+1)%m == 0,
				DividesPeriod:  (p*p-1)%m == 0,
				Even:           m%2 == 0,
				IsHalfPMinus1:  m == (p-1)/2,
				IsHalfPPlus1:   m == (p+1)/2,
			})
		}
		out = append(out, MissingPattern{
			P:       p,
			PMod4:   p % 4,
			PMod6:   p % 6,
			Missing: tagged,
		})
	}

	return out
}

// PermutationReport contrasts the observed permutation indices of one
// prime with the classical first-kind criterion gcd(n, p²−1) = 1.
type PermutationReport struct {
	P              int64   // prime under study (> 3)
	Indices        []int64 // indices with full image, ascending
	GCDPredicted   []int64 // {n in [0, bound): gcd(n, p²−1) = 1}, ascending
	CriterionHolds bool    // exact set equality of the two
}

// PermutationCriterion measures, per prime p > 3, whether the classical
// permutation criterion transfers to the reversed variant. It does not:
// e.g. for p = 5, n = 2 gives the linear bijection 1−2x yet
// gcd(2, 24) = 2, while n = 1 is coprime to 24 yet constant. The report
// records both sets so the divergence is inspectable.
func PermutationCriterion(ds *dataset.Dataset) []PermutationReport {
	out := make([]PermutationReport, 0, len(ds.Primes()))
	for _, p := range ds.Primes() {
		if p <= 3 {
			continue
		}

		period := p*p - 1
		predicted := make([]int64, 0)
		var n int64
		for n = 0; n < ds.Bound(p); n++ {
			if modular.GCD(n, period) == 1 {
				predicted = append(predicted, n)
			}
		}

		observed := ds.PermutationIndices(p, canonicalA)
		out = append(out, PermutationReport{
			P:              p,
			Indices:        observed,
			GCDPredicted:   predicted,
			CriterionHolds: equalSlices(observed, predicted),
		})
	}

	return out
}

// ParameterSummary condenses one (p, a) slice of a full parameter sweep.
type ParameterSummary struct {
	P                int64   // prime under study
	A                int64   // parameter value in [0, p)
	Card2Count       int     // number of indices with a two-element image
	Card2Indices     []int64 // those indices, ascending
	PermutationCount int     // number of full-image indices
	Cardinalities    []int64 // distinct cardinalities observed, ascending
}

// ParameterVariation sweeps a over the whole of [0, p) for a single
// prime across one full period per parameter, and summarizes each slice.
//
// Cost is O(p⁴) — one O(p³) period sweep per parameter — so this is an
// investigation tool for individual primes, not a bulk builder.
func ParameterVariation(ctx context.Context, p int64, opts ...dataset.Option) ([]ParameterSummary, error) {
	buildOpts := append([]dataset.Option{
		dataset.WithPrimes(p),
		dataset.WithFullParameterSweep(),
	}, opts...)
	ds, err := dataset.Build(ctx, buildOpts...)
	if err != nil {
		return nil, err
	}

	out := make([]ParameterSummary, 0, p)
	var a int64
	for a = 0; a < p; a++ {
		card2 := ds.Card2Indices(p, a)
		out = append(out, ParameterSummary{
			P:                p,
			A:                a,
			Card2Count:       len(card2),
			Card2Indices:     card2,
			PermutationCount: len(ds.PermutationIndices(p, a)),
			Cardinalities:    ds.Cardinalities(p, a),
		})
	}

	return out, nil
}

// equalSlices compares two ascending index slices exactly.
func equalSlices(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
