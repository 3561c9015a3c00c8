// Package verify_test contains unit tests for the exact verifier.
// These tests validate the full green path across several primes, the
// structural sentinel errors, the zero-tolerance verdict semantics, and
// report rendering.
package verify_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dickson/dataset"
	"github.com/katalvlaran/dickson/formula"
	"github.com/katalvlaran/dickson/verify"
)

// buildDataset is a test helper for full-period tables.
func buildDataset(t *testing.T, primes ...int64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Build(context.Background(), dataset.WithPrimes(primes...))
	require.NoError(t, err)

	return ds
}

// ------------------------------------------------------------------------
// 1. Structural errors.
// ------------------------------------------------------------------------

func TestRun_EmptyDomain(t *testing.T) {
	// p = 3 is enumerable but below the formulas' domain of validity.
	ds := buildDataset(t, 3)
	_, err := verify.Run(context.Background(), ds)
	require.ErrorIs(t, err, verify.ErrEmptyDataset)
}

func TestRun_InsufficientBound(t *testing.T) {
	ds, err := dataset.Build(context.Background(),
		dataset.WithPrimes(5),
		dataset.WithBound(func(p int64) int64 { return p*p - 1 }), // misses n = p²−1
	)
	require.NoError(t, err)

	_, err = verify.Run(context.Background(), ds)
	require.ErrorIs(t, err, verify.ErrInsufficientBound)
}

func TestRun_CancelledContext(t *testing.T) {
	ds := buildDataset(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := verify.Run(ctx, ds)
	require.ErrorIs(t, err, context.Canceled)
}

// ------------------------------------------------------------------------
// 2. The green path: every check exact, every prime complete.
// ------------------------------------------------------------------------

func TestRun_AllChecksPass(t *testing.T) {
	ds := buildDataset(t, 5, 7, 11, 13)
	rep, err := verify.Run(context.Background(), ds)
	require.NoError(t, err)

	assert.True(t, rep.AllPassed)
	assert.Empty(t, rep.Failures())
	require.Len(t, rep.Outcomes, 4*3, "three formulas per prime")
	require.Len(t, rep.Completeness, 4)

	for _, o := range rep.Outcomes {
		assert.True(t, o.Passed(), o.String())
		assert.True(t, o.Integral)
		assert.True(t, o.Member)
		assert.True(t, o.SetMatch)
	}
	for _, c := range rep.Completeness {
		assert.True(t, c.OK, c.String())
		assert.Len(t, c.Got, 3, "exactly three cardinality-2 indices, no fourth")
	}

	assert.True(t, strings.HasPrefix(rep.Summary(), "PASSED"))
}

func TestRun_KnownFormulaValues(t *testing.T) {
	ds := buildDataset(t, 5)
	rep, err := verify.Run(context.Background(), ds)
	require.NoError(t, err)

	want := map[string]int64{"n1": 13, "n2": 24, "n3": 17}
	for _, o := range rep.Outcomes {
		require.True(t, o.Value.IsIntegral())
		assert.Equal(t, want[o.Formula], o.Value.Int(), o.Formula)
	}

	require.Len(t, rep.Completeness, 1)
	assert.Equal(t, []int64{13, 17, 24}, rep.Completeness[0].Got)
	assert.Equal(t, []int64{13, 17, 24}, rep.Completeness[0].Want)
}

func TestRun_WiderPrimeRange(t *testing.T) {
	// The completeness invariant holds across the whole tested range:
	// three indices per prime, matching the cubic roots exactly.
	ds, err := dataset.Build(context.Background(), dataset.WithPrimeRange(5, 29))
	require.NoError(t, err)

	rep, err := verify.Run(context.Background(), ds)
	require.NoError(t, err)
	require.True(t, rep.AllPassed, rep.Summary())

	for _, c := range rep.Completeness {
		roots, err := formula.CubicRoots(c.P)
		require.NoError(t, err)
		assert.Equal(t, roots[:], c.Got, "p=%d", c.P)
	}
}

func TestRun_BoundBeyondFullPeriod(t *testing.T) {
	// Sweeping past one full period repeats the three indices shifted by
	// p²−1; the raw table holds six of them, but folded into residue
	// classes they are still exactly the three roots.
	ds, err := dataset.Build(context.Background(),
		dataset.WithPrimes(5),
		dataset.WithBound(func(p int64) int64 { return 2 * p * p }),
	)
	require.NoError(t, err)
	require.Equal(t, []int64{13, 17, 24, 37, 41, 48}, ds.Card2Indices(5, 1))

	rep, err := verify.Run(context.Background(), ds)
	require.NoError(t, err)
	assert.True(t, rep.AllPassed, rep.Summary())

	require.Len(t, rep.Completeness, 1)
	assert.True(t, rep.Completeness[0].OK)
	assert.Equal(t, []int64{13, 17, 24}, rep.Completeness[0].Got,
		"repeats fold back onto the canonical classes")
	for _, o := range rep.Outcomes {
		assert.True(t, o.Passed(), o.String())
	}
}

// ------------------------------------------------------------------------
// 3. Verdict semantics on failing outcomes (constructed directly: the
//    builder cannot produce a mathematically failing table).
// ------------------------------------------------------------------------

func TestOutcome_PassedRequiresAllThree(t *testing.T) {
	o := verify.Outcome{Integral: true, Member: true, SetMatch: true}
	assert.True(t, o.Passed())

	for _, broken := range []verify.Outcome{
		{Integral: false, Member: true, SetMatch: true},
		{Integral: true, Member: false, SetMatch: true},
		{Integral: true, Member: true, SetMatch: false},
	} {
		assert.False(t, broken.Passed())
	}
}

func TestReport_FailedSummarySurfacesViolations(t *testing.T) {
	rep := &verify.Report{
		Outcomes: []verify.Outcome{{
			Formula: "n2", Expr: "p^2 - 1", P: 7,
			Value:    formula.Rational{Num: 48, Den: 1},
			Integral: true, Member: false, SetMatch: true,
		}},
		Completeness: []verify.Completeness{{
			P: 7, Got: []int64{25, 31}, Want: []int64{25, 31, 48}, OK: false,
		}},
		AllPassed: false,
	}

	failures := rep.Failures()
	require.Len(t, failures, 2)
	assert.Contains(t, failures[0], "member=false")
	assert.Contains(t, failures[1], "ok=false")

	summary := rep.Summary()
	assert.True(t, strings.HasPrefix(summary, "FAILED"))
	assert.Contains(t, summary, "p=7")
}
