// Package valueset_test contains unit tests for value-set extraction.
// These tests validate the three canonical cardinality-2 cases over F_5,
// agreement between Extract and Sweep, determinism of the sorted output,
// and the sentinel errors.
package valueset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dickson/modular"
	"github.com/katalvlaran/dickson/polynomial"
	"github.com/katalvlaran/dickson/valueset"
)

// ------------------------------------------------------------------------
// 1. Validation.
// ------------------------------------------------------------------------

func TestExtract_InvalidInputs(t *testing.T) {
	_, err := valueset.Extract(1, 3, 1)
	require.ErrorIs(t, err, modular.ErrInvalidModulus)

	_, err = valueset.Extract(5, -1, 1)
	require.ErrorIs(t, err, polynomial.ErrNegativeIndex)
}

func TestSweep_InvalidInputs(t *testing.T) {
	_, err := valueset.Sweep(0, 1, 10)
	require.ErrorIs(t, err, modular.ErrInvalidModulus)

	_, err = valueset.Sweep(5, 1, -1)
	require.ErrorIs(t, err, valueset.ErrNegativeBound)

	sets, err := valueset.Sweep(5, 1, 0)
	require.NoError(t, err)
	assert.NotNil(t, sets)
	assert.Empty(t, sets)
}

// ------------------------------------------------------------------------
// 2. Canonical cases over F_5.
// ------------------------------------------------------------------------

func TestExtract_DegenerateIndices(t *testing.T) {
	// n = 0: constant 2, cardinality 1.
	s, err := valueset.Extract(5, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, s.Values)
	assert.Equal(t, int64(1), s.Cardinality())

	// n = 1: constant a = 1, cardinality 1.
	s, err = valueset.Extract(5, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, s.Values)
}

func TestExtract_CanonicalCardinalityTwo_F5(t *testing.T) {
	// The three closed-form indices for p = 5:
	//   n = 13 = (p²+1)/2     → {1, p-1} = {1, 4}
	//   n = 17 = (p²+2p-1)/2  → {1, p-1} = {1, 4}
	//   n = 24 = p²-1         → {1, 2}
	cases := []struct {
		n    int64
		want []int64
	}{
		{13, []int64{1, 4}},
		{17, []int64{1, 4}},
		{24, []int64{1, 2}},
	}
	for _, c := range cases {
		s, err := valueset.Extract(5, c.n, 1)
		require.NoError(t, err)
		assert.Equal(t, c.want, s.Values, "n=%d", c.n)
		assert.Equal(t, int64(2), s.Cardinality(), "n=%d", c.n)
		assert.False(t, s.IsPermutation())
	}
}

func TestExtract_PermutationIndex(t *testing.T) {
	// D_2(1, x) = 1 - 2x is linear in x, hence a bijection of F_5.
	s, err := valueset.Extract(5, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3, 4}, s.Values)
	assert.True(t, s.IsPermutation())
}

func TestSet_ContainsAndEqual(t *testing.T) {
	s, err := valueset.Extract(5, 24, 1)
	require.NoError(t, err)
	assert.True(t, s.Contains(1))
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(0))
	assert.False(t, s.Contains(4))
	assert.True(t, s.Equal([]int64{1, 2}))
	assert.False(t, s.Equal([]int64{1, 3}))
	assert.False(t, s.Equal([]int64{1}))
}

// ------------------------------------------------------------------------
// 3. Sweep agrees with per-triple Extract, and is deterministic.
// ------------------------------------------------------------------------

func TestSweep_MatchesExtract(t *testing.T) {
	const p, bound = int64(7), int64(49)
	for _, a := range []int64{0, 1, 3} {
		sets, err := valueset.Sweep(p, a, bound)
		require.NoError(t, err)
		require.Len(t, sets, int(bound))
		for n := int64(0); n < bound; n++ {
			want, err := valueset.Extract(p, n, a)
			require.NoError(t, err)
			require.Equal(t, want.Values, sets[n].Values, "a=%d n=%d", a, n)
			require.Equal(t, n, sets[n].N)
			require.Equal(t, a, sets[n].A)
		}
	}
}

func TestSweep_Deterministic(t *testing.T) {
	first, err := valueset.Sweep(11, 1, 121)
	require.NoError(t, err)
	second, err := valueset.Sweep(11, 1, 121)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestSweep_CardinalityBounds(t *testing.T) {
	sets, err := valueset.Sweep(13, 1, 13*13)
	require.NoError(t, err)
	for _, s := range sets {
		c := s.Cardinality()
		require.GreaterOrEqual(t, c, int64(1), "n=%d", s.N)
		require.LessOrEqual(t, c, int64(13), "n=%d", s.N)
	}
}
