package dist

import (
	"errors"
	"fmt"
)

// Sentinel errors for the dist package. Kernels themselves never return an
// error: an infeasible alignment (e.g. a window too small for the length
// difference) is reported as +Inf, per the measure's contract. These
// sentinels are for construction-time ConfigInvalid failures only.
var (
	// ErrUnknownMeasure indicates New was called with an unrecognized Measure.
	ErrUnknownMeasure = errors.New("dist: unknown measure")

	// ErrMissingCost indicates a measure that requires Params.Cost was
	// constructed without one.
	ErrMissingCost = errors.New("dist: missing pointwise cost function")

	// ErrInvalidParam indicates a measure-specific parameter is out of its
	// valid range (e.g. negative Omega, Epsilon, or C).
	ErrInvalidParam = errors.New("dist: parameter out of range")
)

func distErrorf(method string, err error) error {
	return fmt.Errorf("dist.%s: %w", method, err)
}
