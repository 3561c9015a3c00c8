// Configuration options and sentinel errors for Dickson polynomial
// evaluation.
//
// Errors (sentinel):
//
//	– ErrNegativeIndex          if the polynomial index n is negative.
//	– ErrBadMatrixThreshold     if a non-positive threshold is supplied.
//	– modular.ErrInvalidModulus if the modulus p is unusable (p < 2).
//
// Options:
//
//	– Mode:            Auto (default), Iterative, or MatrixPower.
//	– MatrixThreshold: index above which Auto switches to matrix power.

package polynomial

import "errors"

// Sentinel errors returned by the polynomial package.
var (
	// ErrNegativeIndex indicates that a negative polynomial index n was
	// requested; D_n is defined for n >= 0 only.
	ErrNegativeIndex = errors.New("polynomial: index must be non-negative")

	// ErrBadMatrixThreshold indicates that WithMatrixThreshold received a
	// non-positive value, which would make Auto mode meaningless.
	ErrBadMatrixThreshold = errors.New("polynomial: matrix threshold must be positive")
)

// Mode selects the evaluation strategy.
//
// ModeAuto        – iterative below MatrixThreshold, matrix power above.
// ModeIterative   – always the O(n) two-term loop.
// ModeMatrixPower – always the O(log n) companion-matrix power.
type Mode int

const (
	// ModeAuto picks the cheaper strategy per call (default).
	ModeAuto Mode = iota

	// ModeIterative forces the O(n) recurrence loop.
	ModeIterative

	// ModeMatrixPower forces the O(log n) companion-matrix path.
	ModeMatrixPower
)

// DefaultMatrixThreshold is the index at which Auto mode switches to
// matrix power. Below it the plain loop wins on constant factors; above
// it the O(log n) path dominates (a 2×2 modular squaring costs 8 mults).
const DefaultMatrixThreshold = int64(512)

// Options configures evaluation strategy selection.
type Options struct {
	Mode            Mode  // strategy selection policy
	MatrixThreshold int64 // Auto-mode crossover index; must be > 0
}

// Option represents a functional option for configuring evaluation.
type Option func(*Options)

// WithIterative forces the O(n) two-term loop regardless of n.
func WithIterative() Option {
	return func(o *Options) {
		o.Mode = ModeIterative
	}
}

// WithMatrixPower forces the O(log n) companion-matrix path regardless of n.
func WithMatrixPower() Option {
	return func(o *Options) {
		o.Mode = ModeMatrixPower
	}
}

// WithMatrixThreshold overrides the Auto-mode crossover index.
// Must pass a positive value; zero or negative panics with
// ErrBadMatrixThreshold (invalid configuration is a programmer error).
func WithMatrixThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadMatrixThreshold.Error())
		}
		o.MatrixThreshold = threshold
	}
}

// DefaultOptions returns the Options used when no Option overrides are
// supplied: Auto mode with DefaultMatrixThreshold.
func DefaultOptions() Options {
	return Options{
		Mode:            ModeAuto,
		MatrixThreshold: DefaultMatrixThreshold,
	}
}
