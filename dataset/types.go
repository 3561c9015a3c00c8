// Package dataset defines configuration, records, and sentinel errors
// for the enumeration driver.
//
// Errors (sentinel):
//
//	– ErrNoPrimes       if the configured prime list is empty.
//	– ErrNotPrime       if a configured modulus fails the primality check.
//	– ErrBadBound       if the index bound for some prime is not positive.
//	– ErrNoParameters   if the resolved parameter list is empty.
//	– ErrBadParallelism if WithParallelism receives a value below 1.
package dataset

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/dickson/modular"
)

// Sentinel errors returned by the dataset package.
var (
	// ErrNoPrimes indicates that Build was configured with an empty
	// prime list.
	ErrNoPrimes = errors.New("dataset: no primes configured")

	// ErrNotPrime indicates that a configured modulus is not prime.
	// Primality is foundational to every downstream finite-field
	// argument, so this is fatal at construction — never auto-corrected.
	ErrNotPrime = errors.New("dataset: configured modulus is not prime")

	// ErrBadBound indicates that the configured Bound function returned
	// a non-positive index bound for some prime.
	ErrBadBound = errors.New("dataset: index bound must be positive")

	// ErrNoParameters indicates that the resolved parameter list for
	// some prime is empty, so there is nothing to sweep.
	ErrNoParameters = errors.New("dataset: no parameter values configured")

	// ErrBadParallelism indicates a parallelism degree below 1.
	ErrBadParallelism = errors.New("dataset: parallelism must be >= 1")
)

// Record is one enumerated (p, n, a) triple with its extracted image.
// Records are immutable once Build returns.
type Record struct {
	P             int64   // prime modulus
	N             int64   // polynomial index
	A             int64   // parameter, normalized into [0, p)
	Cardinality   int64   // size of the image, in [1, p]
	Values        []int64 // the image itself, sorted ascending
	IsPermutation bool    // Cardinality == P
}

// FullPeriodBound is the default per-prime index bound: p². It covers
// the closed range n ∈ [0, p²−1] — one full period of the evaluator plus
// the wrapped endpoint p²−1, which is itself one of the three canonical
// cardinality-2 indices and must be observable in the table.
func FullPeriodBound(p int64) int64 { return p * p }

// Config collects the enumeration parameters. Pass it explicitly through
// functional options; Build holds no ambient process-wide state.
type Config struct {
	Primes      []int64             // moduli to sweep; each must be prime
	A           []int64             // parameter values; ignored when AllA
	AllA        bool                // sweep a over the whole of [0, p) per prime
	Bound       func(p int64) int64 // per-prime index bound (n < Bound(p))
	Parallelism int                 // max concurrent per-(p, a) sweeps
}

// Option represents a functional option for configuring Build.
type Option func(*Config)

// WithPrimes replaces the configured prime list. Duplicates are collapsed
// and the list is sorted; primality is validated inside Build.
func WithPrimes(primes ...int64) Option {
	return func(c *Config) {
		c.Primes = append([]int64(nil), primes...)
	}
}

// WithPrimeRange configures all primes p with lo <= p <= hi, ascending.
func WithPrimeRange(lo, hi int64) Option {
	return func(c *Config) {
		c.Primes = modular.PrimesInRange(lo, hi)
	}
}

// WithParameterA replaces the parameter list (default: the canonical
// a = 1). Values are normalized into [0, p) per prime inside Build.
func WithParameterA(a ...int64) Option {
	return func(c *Config) {
		c.A = append([]int64(nil), a...)
		c.AllA = false
	}
}

// WithFullParameterSweep sweeps a over the whole of [0, p) for every
// prime — the investigation mode of the parameter-a study.
func WithFullParameterSweep() Option {
	return func(c *Config) {
		c.AllA = true
	}
}

// WithBound overrides the per-prime index bound. The function must
// return a positive bound for every configured prime; a bound below
// FullPeriodBound(p) leaves the canonical index p²−1 outside the table
// and will fail verification later.
func WithBound(bound func(p int64) int64) Option {
	return func(c *Config) {
		c.Bound = bound
	}
}

// WithParallelism caps the number of concurrently running per-(p, a)
// sweeps. Must pass a value >= 1; anything lower panics with
// ErrBadParallelism (invalid configuration is a programmer error).
func WithParallelism(n int) Option {
	return func(c *Config) {
		if n < 1 {
			panic(ErrBadParallelism.Error())
		}
		c.Parallelism = n
	}
}

// DefaultConfig returns the canonical enumeration: odd primes 3..97,
// a = 1, a full period per prime, one worker per available CPU.
func DefaultConfig() Config {
	return Config{
		Primes:      modular.PrimesInRange(3, 97),
		A:           []int64{1},
		Bound:       FullPeriodBound,
		Parallelism: runtime.GOMAXPROCS(0),
	}
}
