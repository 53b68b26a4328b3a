package tsio

import (
	"errors"
	"fmt"
)

var (
	// ErrRaggedChannels indicates a data row's channels don't all share
	// the same number of samples.
	ErrRaggedChannels = errors.New("tsio: channels have mismatched lengths")
	// ErrMalformedValue indicates a non-numeric, non-missing token where a
	// sample value was expected.
	ErrMalformedValue = errors.New("tsio: malformed sample value")
	// ErrNoData indicates the file had no rows after its @data directive.
	ErrNoData = errors.New("tsio: no data rows found")
)

func tsioErrorf(method string, err error) error {
	return fmt.Errorf("tsio.%s: %w", method, err)
}
