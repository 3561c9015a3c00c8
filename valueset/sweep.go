// Package valueset: bulk extraction across a whole index range.
package valueset

import (
	"github.com/katalvlaran/dickson/modular"
)

// Sweep computes the value sets of D_n(a, x) mod p for every index
// n in [0, bound), in index order.
//
// Instead of re-evaluating each (n, x) pair from scratch, Sweep carries
// two column vectors — the full rows of D_{n-1}(a, ·) and D_n(a, ·) —
// and advances both through the recurrence one index at a time. Each
// step costs O(p) multiply-subtracts, so a full period (bound = p²)
// costs O(p³) for the prime, which is what keeps the dataset sweep
// tractable; compare O(p³·log p) for repeated Extract calls.
//
// Returns ErrNegativeBound for bound < 0; bound == 0 yields an empty
// (non-nil) slice. Modulus validation matches modular.New.
func Sweep(p, a, bound int64) ([]Set, error) {
	m, err := modular.New(p)
	if err != nil {
		return nil, err
	}
	if bound < 0 {
		return nil, ErrNegativeBound
	}

	na := m.Normalize(a)
	sets := make([]Set, 0, bound)
	if bound == 0 {
		return sets, nil
	}

	// Row n = 0: D_0(a, x) = 2 for every x.
	prev := make([]int64, p)
	two := m.Normalize(2)
	for i := range prev {
		prev[i] = two
	}
	sets = append(sets, Set{P: p, N: 0, A: na, Values: dedupe(p, prev)})
	if bound == 1 {
		return sets, nil
	}

	// Row n = 1: D_1(a, x) = a for every x.
	curr := make([]int64, p)
	for i := range curr {
		curr[i] = na
	}
	sets = append(sets, Set{P: p, N: 1, A: na, Values: dedupe(p, curr)})

	// Rows n >= 2: advance both columns through
	// D_n(a, x) = a·D_{n-1}(a, x) − x·D_{n-2}(a, x).
	next := make([]int64, p)
	var n, x int64
	for n = 2; n < bound; n++ {
		for x = 0; x < p; x++ {
			next[x] = m.Sub(m.Mul(na, curr[x]), m.Mul(x, prev[x]))
		}
		// Rotate buffers; the old prev slice is recycled as the next "next".
		prev, curr, next = curr, next, prev
		sets = append(sets, Set{P: p, N: n, A: na, Values: dedupe(p, curr)})
	}

	return sets, nil
}
