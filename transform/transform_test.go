package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempo/seq"
	"github.com/katalvlaran/tempo/transform"
)

func TestZNormalizeSequenceHasZeroMeanUnitStd(t *testing.T) {
	s, err := seq.NewSequence([]float64{1, 2, 3, 4, 5}, 1)
	require.NoError(t, err)

	out := transform.ZNormalizeSequence(s)
	var sum float64
	for i := 0; i < out.L; i++ {
		sum += out.At(i, 0)
	}
	assert.InDelta(t, 0, sum/float64(out.L), 1e-9)

	// With zero mean, the mean square is the (population) variance.
	var sumSq float64
	for i := 0; i < out.L; i++ {
		sumSq += out.At(i, 0) * out.At(i, 0)
	}
	assert.InDelta(t, 1, sumSq/float64(out.L), 1e-9)
}

func TestMinMaxSequenceBounds(t *testing.T) {
	s, err := seq.NewSequence([]float64{2, 4, 6, 8}, 1)
	require.NoError(t, err)
	out := transform.MinMaxSequence(s)
	assert.InDelta(t, 0, out.At(0, 0), 1e-9)
	assert.InDelta(t, 1, out.At(3, 0), 1e-9)
}

func TestDerivativeSequenceShrinksLengthByOne(t *testing.T) {
	s, err := seq.NewSequence([]float64{1, 3, 6, 10}, 1)
	require.NoError(t, err)
	out, err := transform.DerivativeSequence(s)
	require.NoError(t, err)
	assert.Equal(t, 3, out.L)
	assert.InDelta(t, 2, out.At(0, 0), 1e-9)
	assert.InDelta(t, 3, out.At(1, 0), 1e-9)
	assert.InDelta(t, 4, out.At(2, 0), 1e-9)
}

func TestDerivativeSequenceRejectsTooShort(t *testing.T) {
	s, err := seq.NewSequence([]float64{1}, 1)
	require.NoError(t, err)
	_, err = transform.DerivativeSequence(s)
	assert.ErrorIs(t, err, transform.ErrDegenerateSequence)
}
