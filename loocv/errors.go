package loocv

import (
	"errors"
	"fmt"
)

// ErrEmptyFamily indicates Tune was called with a Family reporting Len() == 0.
var ErrEmptyFamily = errors.New("loocv: empty parameter family")

// ErrTooFewRows indicates Tune was called with fewer than 2 rows in the pool.
var ErrTooFewRows = errors.New("loocv: fewer than two rows in the evaluation pool")

func loocvErrorf(method string, err error) error {
	return fmt.Errorf("loocv.%s: %w", method, err)
}
