package seq

import (
	"errors"
	"fmt"
)

// Sentinel errors for the seq package.
var (
	// ErrEmptySequence indicates a sequence with zero length was rejected
	// where a non-empty sequence is required.
	ErrEmptySequence = errors.New("seq: sequence is empty")

	// ErrDimensionMismatch indicates two sequences or a sequence and a
	// dataset disagree on the number of channels D.
	ErrDimensionMismatch = errors.New("seq: channel dimension mismatch")

	// ErrNaN indicates a NaN value was found in sequence data; inputs must
	// be finite per the data model's invariants.
	ErrNaN = errors.New("seq: NaN value in input")

	// ErrBadLength indicates a sequence's value slice length is not a
	// multiple of its declared channel count D.
	ErrBadLength = errors.New("seq: length is not a multiple of D")

	// ErrEmptyDataset indicates an operation requires at least one row but
	// the dataset (or view) is empty.
	ErrEmptyDataset = errors.New("seq: dataset is empty")

	// ErrIndexOutOfRange indicates a row index fell outside [0, size).
	ErrIndexOutOfRange = errors.New("seq: index out of range")

	// ErrLabelUnknown indicates a label string has no entry in the
	// dataset's label<->index map.
	ErrLabelUnknown = errors.New("seq: unknown label")
)

// seqErrorf wraps err with a method-name prefix, preserving it for errors.Is.
func seqErrorf(method string, err error) error {
	return fmt.Errorf("seq.%s: %w", method, err)
}
