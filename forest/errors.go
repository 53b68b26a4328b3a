package forest

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDataset indicates Train was called with a dataset of zero rows.
	ErrEmptyDataset = errors.New("forest: empty dataset")
	// ErrNotTrained indicates Predict was called before Train succeeded.
	ErrNotTrained = errors.New("forest: forest has not been trained")
	// ErrNoTrees indicates a TrainConfig requesting zero trees.
	ErrNoTrees = errors.New("forest: number of trees must be positive")
)

func forestErrorf(method string, err error) error {
	return fmt.Errorf("forest.%s: %w", method, err)
}
