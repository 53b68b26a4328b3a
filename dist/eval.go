package dist

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// Eval computes the bound distance between a and b. ub is the caller's
// upper bound: a finite value enables early abandoning against that bound,
// +Inf enables pruning from a diagonal heuristic bound only, and NaN
// disables both, forcing the full reference DP (used by the package tests
// as the reference result). DirectMeasure ignores ub: it always sums the
// cost over every index and does not abandon early.
//
// Eval is safe for concurrent use across distinct Instance values sharing
// no Workspace; a single Instance must not be called concurrently, since
// its Workspace buffer is reused across calls.
func (in Instance) Eval(a, b seq.Sequence, ub float64) float64 {
	nblines, nbcols := a.L, b.L

	switch in.measure {
	case DTWMeasure:
		return in.evalDTW(a, b, ub)
	case CDTWMeasure:
		return in.evalCDTW(a, b, ub)
	case WDTWMeasure:
		return in.evalWDTW(a, b, ub)
	case ADTWMeasure:
		return in.evalADTW(a, b, ub)
	case ERPMeasure:
		return in.evalERP(a, b, ub)
	case LCSSMeasure:
		return in.evalLCSS(a, b, ub)
	case MSMMeasure:
		return in.evalMSM(a, b, ub)
	case TWEMeasure:
		return in.evalTWE(a, b, ub)
	case DirectMeasure:
		return in.evalDirect(a, b)
	default:
		_ = nblines
		_ = nbcols
		return math.NaN()
	}
}

func (in Instance) buf(nbcols int) []float64 {
	return in.ws.rows(nbcols)
}
