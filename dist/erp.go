package dist

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// evalERP is Edit distance with Real Penalty: a mismatch may either match
// a[i] against b[j] directly, or be charged for treating one of them as a
// gap against the reference value GapValue. Border rows/columns fall out
// of the shared skeleton automatically, since its row-0/column-0 handling
// already chains single-sequence steps the same way ERP's gap steps do.
func (in Instance) evalERP(a, b seq.Sequence, ub float64) float64 {
	w := in.params.Window
	gap := adeGapDist(in.params.Exponent, in.params.GapValue)

	diag := func(i, j int) float64 {
		if w >= 0 && abs(i-j) > w {
			return posInf
		}
		return in.params.Cost(a, b, i, j)
	}
	above := func(i, j int) float64 {
		if w >= 0 && abs(i-j) > w {
			return posInf
		}
		return gap(a, i)
	}
	left := func(i, j int) float64 {
		if w >= 0 && abs(i-j) > w {
			return posInf
		}
		return gap(b, j)
	}
	buf := in.buf(b.L)
	return eapEval(a.L, b.L, diag, above, left, ub, buf)
}

func adeGapDist(e, gv float64) func(s seq.Sequence, i int) float64 {
	return func(s seq.Sequence, i int) float64 {
		return math.Pow(math.Abs(s.At(i, 0)-gv), e)
	}
}
