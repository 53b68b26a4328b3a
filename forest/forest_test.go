package forest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempo/forest"
	"github.com/katalvlaran/tempo/seq"
)

// argmax returns the index of the largest entry in probs.
func argmax(probs []float64) int {
	best := 0
	for i, p := range probs {
		if p > probs[best] {
			best = i
		}
	}
	return best
}

func buildTwoClusterDataset(t *testing.T) *seq.Dataset {
	t.Helper()
	rows := []seq.Sequence{}
	labels := []int{}
	low := [][]float64{{0, 0, 0, 0}, {0.1, 0, 0.1, 0}, {0, 0.1, 0, 0.1}, {0.05, 0.05, 0, 0}}
	high := [][]float64{{9, 9, 9, 9}, {9.1, 9, 9.1, 9}, {9, 9.1, 9, 9.1}, {8.9, 9, 9, 9}}
	for _, v := range low {
		s, err := seq.NewSequence(v, 1)
		require.NoError(t, err)
		rows = append(rows, s)
		labels = append(labels, 0)
	}
	for _, v := range high {
		s, err := seq.NewSequence(v, 1)
		require.NoError(t, err)
		rows = append(rows, s)
		labels = append(labels, 1)
	}
	ds, err := seq.NewDataset(rows, labels, []string{"low", "high"})
	require.NoError(t, err)
	return ds
}

func TestTrainAndPredictOnSeparableClusters(t *testing.T) {
	ds := buildTwoClusterDataset(t)
	f, err := forest.Train(ds, forest.WithTrees(9), forest.WithSeed(3), forest.WithCandidatesPerNode(3))
	require.NoError(t, err)
	assert.Equal(t, 9, f.NumTrees())

	q, err := seq.NewSequence([]float64{0.02, 0.02, 0, 0.02}, 1)
	require.NoError(t, err)
	probs, err := f.Predict(q)
	require.NoError(t, err)
	require.Len(t, probs, 2)
	assert.InDelta(t, 1.0, probs[0]+probs[1], 1e-12)
	assert.Equal(t, 0, argmax(probs))

	q2, err := seq.NewSequence([]float64{9, 9, 8.9, 9.1}, 1)
	require.NoError(t, err)
	probs2, err := f.Predict(q2)
	require.NoError(t, err)
	require.Len(t, probs2, 2)
	assert.InDelta(t, 1.0, probs2[0]+probs2[1], 1e-12)
	assert.Equal(t, 1, argmax(probs2))
}

func TestTrainRejectsEmptyDataset(t *testing.T) {
	_, err := forest.Train(nil)
	assert.Error(t, err)
}

func TestPredictBeforeTrainErrors(t *testing.T) {
	var f *forest.Forest
	_, err := f.Predict(seq.Sequence{})
	assert.ErrorIs(t, err, forest.ErrNotTrained)
}
