package nn_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempo/cost"
	"github.com/katalvlaran/tempo/dist"
	"github.com/katalvlaran/tempo/nn"
	"github.com/katalvlaran/tempo/seq"
)

func buildDataset(t *testing.T) *seq.Dataset {
	t.Helper()
	rows := []seq.Sequence{}
	for _, vals := range [][]float64{
		{0, 0, 0},
		{1, 1, 1},
		{5, 5, 5},
		{5, 5, 5},
	} {
		s, err := seq.NewSequence(vals, 1)
		require.NoError(t, err)
		rows = append(rows, s)
	}
	ds, err := seq.NewDataset(rows, []int{0, 0, 1, 1}, []string{"low", "high"})
	require.NoError(t, err)
	return ds
}

func TestClassifyPicksNearest(t *testing.T) {
	ds := buildDataset(t)
	inst, err := dist.New(dist.DTWMeasure, dist.Params{Cost: cost.SqE(1)})
	require.NoError(t, err)

	q, err := seq.NewSequence([]float64{0.1, 0.1, 0.1}, 1)
	require.NoError(t, err)

	idx, bsf := nn.Classify(ds, q, ds.AllIndices(), inst, rand.New(rand.NewSource(1)))
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 0.03, bsf, 1e-6)
}

func TestClassifyTiesAreResolved(t *testing.T) {
	ds := buildDataset(t)
	inst, err := dist.New(dist.DTWMeasure, dist.Params{Cost: cost.SqE(1)})
	require.NoError(t, err)

	q, err := seq.NewSequence([]float64{5, 5, 5}, 1)
	require.NoError(t, err)

	idx, bsf := nn.Classify(ds, q, seq.IndexSet{2, 3}, inst, rand.New(rand.NewSource(2)))
	assert.Contains(t, []int{2, 3}, idx)
	assert.InDelta(t, 0, bsf, 1e-9)
}

func TestClassifyAllInfeasible(t *testing.T) {
	ds := buildDataset(t)
	inst, err := dist.New(dist.CDTWMeasure, dist.Params{Cost: cost.SqE(1), Window: 0})
	require.NoError(t, err)

	q, err := seq.NewSequence([]float64{0, 0}, 1)
	require.NoError(t, err)

	idx, bsf := nn.Classify(ds, q, ds.AllIndices(), inst, nil)
	assert.Equal(t, -1, idx)
	assert.True(t, math.IsInf(bsf, 1))
}
