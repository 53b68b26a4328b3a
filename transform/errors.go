package transform

import (
	"errors"
	"fmt"
)

// ErrDegenerateSequence indicates a sequence too short or too flat for
// the requested transform (e.g. differencing a length-1 series).
var ErrDegenerateSequence = errors.New("transform: degenerate sequence for this transform")

func transformErrorf(method string, err error) error {
	return fmt.Errorf("transform.%s: %w", method, err)
}
