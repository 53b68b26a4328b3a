package dist_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tempo/cost"
	"github.com/katalvlaran/tempo/dist"
	"github.com/katalvlaran/tempo/seq"
)

func mustSeq(t *testing.T, vals ...float64) seq.Sequence {
	t.Helper()
	s, err := seq.NewSequence(vals, 1)
	require.NoError(t, err)
	return s
}

func allMeasures() []dist.Measure {
	return []dist.Measure{
		dist.DTWMeasure, dist.CDTWMeasure, dist.WDTWMeasure, dist.ADTWMeasure,
		dist.ERPMeasure, dist.LCSSMeasure, dist.MSMMeasure, dist.TWEMeasure,
		dist.DirectMeasure,
	}
}

func paramsFor(m dist.Measure) dist.Params {
	p := dist.Params{
		Cost:     cost.SqE(1),
		Window:   dist.NoWindow,
		G:        0.05,
		Omega:    1.0,
		GapValue: 0.0,
		Exponent: 2,
		Epsilon:  0.5,
		C:        1.0,
		Nu:       0.001,
		Lambda:   1.0,
	}
	if m == dist.CDTWMeasure {
		p.Window = 2
	}
	return p
}

func TestIdenticalSequenceIsZero(t *testing.T) {
	for _, m := range allMeasures() {
		m := m
		t.Run("", func(t *testing.T) {
			inst, err := dist.New(m, paramsFor(m))
			require.NoError(t, err)
			a := mustSeq(t, 1, 2, 3, 4, 5)
			got := inst.Eval(a, a, math.Inf(1))
			assert.InDelta(t, 0, got, 1e-9)
		})
	}
}

func TestEAPMatchesFullDP(t *testing.T) {
	for _, m := range allMeasures() {
		m := m
		t.Run("", func(t *testing.T) {
			inst, err := dist.New(m, paramsFor(m))
			require.NoError(t, err)
			a := mustSeq(t, 1, 3, 2, 5, 4, 6)
			b := mustSeq(t, 2, 3, 1, 5, 6, 4)

			full := inst.Eval(a, b, math.NaN())
			eap := inst.Eval(a, b, math.Inf(1))
			assert.InDelta(t, full, eap, 1e-9)
		})
	}
}

func TestDirectRequiresEqualLength(t *testing.T) {
	inst, err := dist.New(dist.DirectMeasure, dist.Params{Cost: cost.SqE(1)})
	require.NoError(t, err)
	a := mustSeq(t, 1, 2, 3)
	b := mustSeq(t, 1, 2)
	got := inst.Eval(a, b, math.Inf(1))
	assert.True(t, math.IsInf(got, 1))
}

func TestCDTWRejectsBandTooNarrow(t *testing.T) {
	inst, err := dist.New(dist.CDTWMeasure, dist.Params{Cost: cost.SqE(1), Window: 0})
	require.NoError(t, err)
	a := mustSeq(t, 1, 2, 3, 4)
	b := mustSeq(t, 4, 3, 2, 1, 9, 9, 9, 9)
	got := inst.Eval(a, b, math.Inf(1))
	assert.True(t, math.IsInf(got, 1))
}

func TestLCSSDistanceInUnitRange(t *testing.T) {
	inst, err := dist.New(dist.LCSSMeasure, dist.Params{Window: dist.NoWindow, Epsilon: 0.1})
	require.NoError(t, err)
	a := mustSeq(t, 1, 2, 3, 4, 5)
	b := mustSeq(t, 1, 2, 3, 4, 5)
	got := inst.Eval(a, b, math.Inf(1))
	assert.InDelta(t, 0, got, 1e-9)

	c := mustSeq(t, 100, 200, 300)
	got2 := inst.Eval(a, c, math.Inf(1))
	assert.GreaterOrEqual(t, got2, 0.0)
	assert.LessOrEqual(t, got2, 1.0)
}

func TestNewRejectsMissingCost(t *testing.T) {
	_, err := dist.New(dist.DTWMeasure, dist.Params{})
	assert.ErrorIs(t, err, dist.ErrMissingCost)
}

func TestNewRejectsUnknownMeasure(t *testing.T) {
	_, err := dist.New(dist.Measure(999), dist.Params{Cost: cost.SqE(1)})
	assert.ErrorIs(t, err, dist.ErrUnknownMeasure)
}
