package dist

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// evalTWE is Time Warp Edit distance: matches pay a stiffness-weighted
// timestamp penalty on top of the pointwise cost of both the current and
// preceding sample pair, while deletes pay a constant Lambda plus a
// stiffness-weighted single-step timestamp penalty. The virtual
// predecessor of index 0 is the element itself, a common boundary
// convention for TWE's edge rows/columns (see DESIGN.md).
func (in Instance) evalTWE(a, b seq.Sequence, ub float64) float64 {
	nu, lambda := in.params.Nu, in.params.Lambda

	diag := func(i, j int) float64 {
		i1, j1 := prevIdx(i), prevIdx(j)
		d := math.Abs(a.At(i, 0)-b.At(j, 0)) + math.Abs(a.At(i1, 0)-b.At(j1, 0))
		return d + nu*(float64(abs(i-j))+float64(abs(i1-j1)))
	}
	above := func(i, j int) float64 {
		i1 := prevIdx(i)
		return math.Abs(a.At(i, 0)-a.At(i1, 0)) + nu*float64(i-i1) + lambda
	}
	left := func(i, j int) float64 {
		j1 := prevIdx(j)
		return math.Abs(b.At(j, 0)-b.At(j1, 0)) + nu*float64(j-j1) + lambda
	}
	buf := in.buf(b.L)
	return eapEval(a.L, b.L, diag, above, left, ub, buf)
}

func prevIdx(i int) int {
	if i == 0 {
		return 0
	}
	return i - 1
}
