// Package valueset: Set type and single-triple extraction.
package valueset

import (
	"errors"
	"sort"

	"github.com/katalvlaran/dickson/modular"
	"github.com/katalvlaran/dickson/polynomial"
)

// ErrNegativeBound indicates that Sweep received a negative index bound.
var ErrNegativeBound = errors.New("valueset: bound must be non-negative")

// Set is the image of x ↦ D_n(a, x) mod p over all x in F_p.
// Values is sorted ascending and deduplicated; a Set is read-only after
// construction.
type Set struct {
	P      int64   // modulus
	N      int64   // polynomial index
	A      int64   // parameter, normalized into [0, p)
	Values []int64 // distinct residues, sorted ascending
}

// Cardinality returns the number of distinct values in the image.
// For valid inputs it always lies in [1, p].
func (s Set) Cardinality() int64 { return int64(len(s.Values)) }

// IsPermutation reports whether D_n(a, ·) is a permutation of F_p,
// i.e. the image has cardinality exactly p.
func (s Set) IsPermutation() bool { return s.Cardinality() == s.P }

// Contains reports whether v is in the image, by binary search.
func (s Set) Contains(v int64) bool {
	i := sort.Search(len(s.Values), func(i int) bool { return s.Values[i] >= v })

	return i < len(s.Values) && s.Values[i] == v
}

// Equal reports element-for-element equality with vals, which must be
// sorted ascending (as every Set and every formula prediction is).
func (s Set) Equal(vals []int64) bool {
	if len(s.Values) != len(vals) {
		return false
	}
	for i := range vals {
		if s.Values[i] != vals[i] {
			return false
		}
	}

	return true
}

// Extract computes the value set of D_n(a, x) mod p for a fixed triple.
//
// Validation mirrors the evaluator: p must be a usable modulus and n
// non-negative. a need not be pre-reduced.
//
// Complexity: O(p·log n) with the evaluator's matrix fast path (the
// default for the large indices the closed forms produce).
func Extract(p, n, a int64, opts ...polynomial.Option) (Set, error) {
	row, err := polynomial.Row(n, a, p, opts...)
	if err != nil {
		return Set{}, err
	}

	m, _ := modular.New(p) // Row already validated p

	return Set{P: p, N: n, A: m.Normalize(a), Values: dedupe(p, row)}, nil
}

// dedupe collapses a full evaluation row into the sorted distinct values.
// Residues live in [0, p), so a boolean presence table replaces any map
// and yields sorted output by construction. O(p) time and memory.
func dedupe(p int64, row []int64) []int64 {
	seen := make([]bool, p)
	count := 0
	for _, v := range row {
		if !seen[v] {
			seen[v] = true
			count++
		}
	}

	values := make([]int64, 0, count)
	var r int64
	for r = 0; r < p; r++ {
		if seen[r] {
			values = append(values, r)
		}
	}

	return values
}
