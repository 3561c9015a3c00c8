// Package polynomial_test contains unit tests for Dickson evaluation.
// These tests validate the recurrence base cases, hand-checked small
// values over F_5, equality of the iterative and matrix strategies,
// periodicity with period p²-1, and the sentinel errors.
package polynomial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dickson/modular"
	"github.com/katalvlaran/dickson/polynomial"
)

// ------------------------------------------------------------------------
// 1. Validation: sentinel errors for invalid inputs.
// ------------------------------------------------------------------------

func TestEvaluate_NegativeIndex(t *testing.T) {
	_, err := polynomial.Evaluate(-1, 1, 0, 5)
	require.ErrorIs(t, err, polynomial.ErrNegativeIndex)

	_, err = polynomial.EvaluateClassical(-3, 0, 1, 5)
	require.ErrorIs(t, err, polynomial.ErrNegativeIndex)

	_, err = polynomial.Row(-1, 1, 5)
	require.ErrorIs(t, err, polynomial.ErrNegativeIndex)
}

func TestEvaluate_InvalidModulus(t *testing.T) {
	_, err := polynomial.Evaluate(3, 1, 0, 1)
	require.ErrorIs(t, err, modular.ErrInvalidModulus)

	_, err = polynomial.Row(3, 1, 0)
	require.ErrorIs(t, err, modular.ErrInvalidModulus)
}

func TestWithMatrixThreshold_PanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() {
		_, _ = polynomial.Evaluate(3, 1, 0, 5, polynomial.WithMatrixThreshold(0))
	})
}

// ------------------------------------------------------------------------
// 2. Base cases and hand-checked small values over F_5.
// ------------------------------------------------------------------------

func TestEvaluate_BaseCases(t *testing.T) {
	// D_0(a, x) = 2 mod p and D_1(a, x) = a mod p, for every x.
	for _, p := range []int64{2, 3, 5, 7} {
		for x := int64(0); x < p; x++ {
			v, err := polynomial.Evaluate(0, 1, x, p)
			require.NoError(t, err)
			assert.Equal(t, 2%p, v, "D_0(1,%d) mod %d", x, p)

			v, err = polynomial.Evaluate(1, 1, x, p)
			require.NoError(t, err)
			assert.Equal(t, int64(1), v, "D_1(1,%d) mod %d", x, p)
		}
	}
}

func TestEvaluate_DegreeTwo_F5(t *testing.T) {
	// D_2(1, x) = 1·D_1 − x·D_0 = 1 − 2x (mod 5).
	want := []int64{1, 4, 2, 0, 3} // x = 0..4
	for x, w := range want {
		v, err := polynomial.Evaluate(2, 1, int64(x), 5)
		require.NoError(t, err)
		assert.Equal(t, w, v, "D_2(1,%d) mod 5", x)
	}
}

func TestEvaluate_HandComputedChain_F5(t *testing.T) {
	// D_k(1, 2) mod 5, advanced by hand through the recurrence
	// D_k = D_{k-1} − 2·D_{k-2}.
	cases := []struct {
		n, want int64
	}{
		{2, 2}, {3, 0}, {4, 1}, {5, 1}, {6, 4},
		{13, 4}, {17, 4}, {24, 2},
	}
	for _, c := range cases {
		v, err := polynomial.Evaluate(c.n, 1, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, c.want, v, "D_%d(1,2) mod 5", c.n)
	}
}

func TestEvaluate_XZeroIsConstantOne(t *testing.T) {
	// At x = 0 the recurrence collapses to D_k = a·D_{k-1}; with a = 1
	// every index n >= 1 evaluates to 1.
	for _, n := range []int64{1, 2, 13, 17, 24, 1000} {
		v, err := polynomial.Evaluate(n, 1, 0, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), v, "D_%d(1,0) mod 5", n)
	}
}

// ------------------------------------------------------------------------
// 3. Strategy equivalence: iterative vs matrix power, bit for bit.
// ------------------------------------------------------------------------

func TestEvaluate_IterativeMatchesMatrix(t *testing.T) {
	for _, p := range []int64{5, 7, 11, 13} {
		for _, n := range []int64{0, 1, 2, 3, 10, 37, p*p - 1, (p*p + 1) / 2} {
			for a := int64(0); a < p; a++ {
				for x := int64(0); x < p; x++ {
					it, err := polynomial.Evaluate(n, a, x, p, polynomial.WithIterative())
					require.NoError(t, err)
					mx, err := polynomial.Evaluate(n, a, x, p, polynomial.WithMatrixPower())
					require.NoError(t, err)
					require.Equal(t, it, mx,
						"p=%d n=%d a=%d x=%d: iterative %d != matrix %d", p, n, a, x, it, mx)
				}
			}
		}
	}
}

func TestEvaluate_AutoThresholdCrossover(t *testing.T) {
	// Forcing a tiny threshold must not change any result.
	for x := int64(0); x < 7; x++ {
		fast, err := polynomial.Evaluate(100, 1, x, 7, polynomial.WithMatrixThreshold(1))
		require.NoError(t, err)
		slow, err := polynomial.Evaluate(100, 1, x, 7, polynomial.WithIterative())
		require.NoError(t, err)
		assert.Equal(t, slow, fast, "x=%d", x)
	}
}

// ------------------------------------------------------------------------
// 4. Periodicity: D_{n+p²-1}(1, x) == D_n(1, x) for all n >= 1.
// ------------------------------------------------------------------------

func TestEvaluate_PeriodicityFullPeriod(t *testing.T) {
	for _, p := range []int64{5, 7, 11} {
		period := p*p - 1
		for n := int64(1); n <= 12; n++ {
			for x := int64(0); x < p; x++ {
				base, err := polynomial.Evaluate(n, 1, x, p)
				require.NoError(t, err)
				shifted, err := polynomial.Evaluate(n+period, 1, x, p)
				require.NoError(t, err)
				require.Equal(t, base, shifted,
					"p=%d: D_%d(1,%d) != D_%d(1,%d)", p, n, x, n+period, x)
			}
		}
	}
}

// ------------------------------------------------------------------------
// 5. Classical variant and Row.
// ------------------------------------------------------------------------

func TestEvaluateClassical_SmallCases(t *testing.T) {
	// E_2(x, a) = x² − 2a, E_3(x, a) = x³ − 3ax.
	cases := []struct {
		n, x, a, p, want int64
	}{
		{0, 3, 1, 7, 2},
		{1, 3, 1, 7, 3},
		{2, 3, 1, 7, 0},  // 9 − 2 = 7 ≡ 0
		{3, 2, 1, 7, 2},  // 8 − 6 = 2
		{3, 4, 2, 11, 7}, // 64 − 24 = 40 ≡ 7
	}
	for _, c := range cases {
		v, err := polynomial.EvaluateClassical(c.n, c.x, c.a, c.p)
		require.NoError(t, err)
		assert.Equal(t, c.want, v, "E_%d(%d,%d) mod %d", c.n, c.x, c.a, c.p)
	}
}

func TestRow_MatchesPointwiseEvaluate(t *testing.T) {
	for _, n := range []int64{0, 1, 2, 13, 24} {
		row, err := polynomial.Row(n, 1, 5)
		require.NoError(t, err)
		require.Len(t, row, 5)
		for x := int64(0); x < 5; x++ {
			v, err := polynomial.Evaluate(n, 1, x, 5)
			require.NoError(t, err)
			assert.Equal(t, v, row[x], "n=%d x=%d", n, x)
		}
	}
}
