// Package verify defines the outcome records and sentinel errors of the
// exact verification run.
//
// Errors (sentinel):
//
//	– ErrEmptyDataset      if the dataset holds no prime above 3.
//	– ErrInsufficientBound if some prime's table does not cover the full
//	  period, so the canonical index p²−1 could never be observed.
package verify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/dickson/formula"
)

// Sentinel errors returned by Run. These are structural problems with
// the input, distinct from mathematical verification failures, which are
// reported through the Report verdict instead.
var (
	// ErrEmptyDataset indicates that the dataset holds no prime in the
	// formulas' domain of validity (p > 3).
	ErrEmptyDataset = errors.New("verify: dataset holds no prime above 3")

	// ErrInsufficientBound indicates that a prime was enumerated with an
	// index bound below p², leaving the canonical index p²−1 outside the
	// table; verification would be vacuous.
	ErrInsufficientBound = errors.New("verify: dataset bound does not cover the full period")
)

// Outcome records the three exact checks for one (formula, p) pair.
type Outcome struct {
	Formula  string           // registry name: n1, n2, n3
	Expr     string           // human-readable closed form
	P        int64            // prime under test
	Value    formula.Rational // the computed formula value, exact
	Integral bool             // check 1: the value is an integer
	Member   bool             // check 2: it is an observed cardinality-2 index
	SetMatch bool             // check 3: re-extracted image equals prediction
}

// Passed reports whether all three checks succeeded for this pair.
func (o Outcome) Passed() bool { return o.Integral && o.Member && o.SetMatch }

// String renders one report line, e.g.
// "n2 = p^2 - 1 @ p=13: value=168 integral=true member=true set=true".
func (o Outcome) String() string {
	return fmt.Sprintf("%s = %s @ p=%d: value=%s integral=%t member=%t set=%t",
		o.Formula, o.Expr, o.P, o.Value, o.Integral, o.Member, o.SetMatch)
}

// Completeness records the invariant check for one prime: the observed
// cardinality-2 index classes mod p²−1 must be exactly the cubic's
// three roots. Class 0 is represented by p²−1, so tables swept past the
// full period fold their repeats back onto the canonical indices.
type Completeness struct {
	P    int64   // prime under test
	Got  []int64 // observed cardinality-2 index classes, ascending
	Want []int64 // the three cubic roots, ascending
	OK   bool    // exact set equality, size three included
}

// String renders one completeness line.
func (c Completeness) String() string {
	return fmt.Sprintf("completeness @ p=%d: got=%v want=%v ok=%t", c.P, c.Got, c.Want, c.OK)
}

// Report aggregates every outcome of one verification run. It is
// rebuilt from scratch each run and never mutated afterwards.
type Report struct {
	Outcomes     []Outcome      // one per (formula, p), stable order
	Completeness []Completeness // one per prime, ascending p
	AllPassed    bool           // global verdict: no partial credit
}

// Failures returns the rendered lines of every failed check, in report
// order. Empty when AllPassed.
func (r *Report) Failures() []string {
	lines := make([]string, 0)
	for _, o := range r.Outcomes {
		if !o.Passed() {
			lines = append(lines, o.String())
		}
	}
	for _, c := range r.Completeness {
		if !c.OK {
			lines = append(lines, c.String())
		}
	}

	return lines
}

// Summary renders the global verdict with failure details, suitable for
// plain surfacing by a reporting collaborator.
func (r *Report) Summary() string {
	if r.AllPassed {
		return fmt.Sprintf("PASSED: %d formula checks and %d completeness checks, all exact",
			len(r.Outcomes), len(r.Completeness))
	}

	return fmt.Sprintf("FAILED:\n  %s", strings.Join(r.Failures(), "\n  "))
}
