// errors.go — sentinel errors for the simplex package.
//
// Error policy (matches the rest of the module):
//   • Only package-level sentinels are exposed.
//   • Callers MUST branch with errors.Is(err, ErrX), never string compares.
//   • Specific Insert violations wrap ErrInvalidSimplex, so a caller that
//     only cares about "was the row rejected" checks the base sentinel.
//   • Use sites MAY attach context with %w wrapping.

package simplex

import (
	"errors"
	"fmt"
)

// ErrInvalidSimplex is the base sentinel for every Insert contract violation:
// a row whose declared dimension, label set, or weight breaks the simplex
// invariant. All specific sentinels below match it via errors.Is.
var ErrInvalidSimplex = errors.New("simplex: invalid simplex")

var (
	// ErrNegativeDimension indicates Insert was called with dimension < 0.
	ErrNegativeDimension = fmt.Errorf("%w: dimension must be non-negative", ErrInvalidSimplex)
	// ErrArityMismatch indicates the label count differs from dimension+1.
	ErrArityMismatch = fmt.Errorf("%w: label count must equal dimension+1", ErrInvalidSimplex)
	// ErrDuplicateLabel indicates a label occurs more than once in one row.
	ErrDuplicateLabel = fmt.Errorf("%w: labels must be distinct", ErrInvalidSimplex)
	// ErrNegativeWeight indicates a negative weight; weights are additive counts.
	ErrNegativeWeight = fmt.Errorf("%w: weight must be non-negative", ErrInvalidSimplex)
)
