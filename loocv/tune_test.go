package loocv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempo/cost"
	"github.com/katalvlaran/tempo/loocv"
	"github.com/katalvlaran/tempo/seq"
)

func buildSeparableDataset(t *testing.T) *seq.Dataset {
	t.Helper()
	rows := []seq.Sequence{}
	labels := []int{}
	low := [][]float64{{0, 0, 0, 0}, {0.1, 0, 0.1, 0}, {0, 0.1, 0, 0.1}}
	high := [][]float64{{9, 9, 9, 9}, {9.1, 9, 9.1, 9}, {9, 9.1, 9, 9.1}}
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

func TestTuneFindsPerfectAccuracyOnSeparableData(t *testing.T) {
	ds := buildSeparableDataset(t)
	family := loocv.NewWindowFamily(3, cost.SqE(1))

	result, err := loocv.Tune(family, ds, ds.AllIndices(), loocv.WithWorkers(2))
	require.NoError(t, err)

	assert.Equal(t, ds.Len(), result.Total)
	assert.GreaterOrEqual(t, result.BestIndex, 0)
	assert.InDelta(t, 1.0, result.Accuracy(result.BestIndex), 1e-9)
}

func TestTuneRejectsEmptyFamily(t *testing.T) {
	ds := buildSeparableDataset(t)
	_, err := loocv.Tune(loocv.WindowFamily{}, ds, ds.AllIndices())
	assert.ErrorIs(t, err, loocv.ErrEmptyFamily)
}

func TestTuneRejectsTooFewRows(t *testing.T) {
	ds := buildSeparableDataset(t)
	family := loocv.NewWindowFamily(2, cost.SqE(1))
	_, err := loocv.Tune(family, ds, seq.IndexSet{0})
	assert.ErrorIs(t, err, loocv.ErrTooFewRows)
}
