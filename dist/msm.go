package dist

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// evalMSM is Move-Split-Merge: the diagonal step matches a[i] to b[j]
// directly, while the two non-diagonal steps split or merge a run of
// equal-valued points, charged via msmCost. Grounded on
// original_source/libtempo/distance/msm.hpp's internal::msm and its
// univariate split/merge cost helper.
func (in Instance) evalMSM(a, b seq.Sequence, ub float64) float64 {
	c := in.params.C

	diag := func(i, j int) float64 {
		return math.Abs(a.At(i, 0) - b.At(j, 0))
	}
	above := func(i, j int) float64 {
		prevA := a.At(i, 0)
		if i > 0 {
			prevA = a.At(i-1, 0)
		}
		return msmCost(a.At(i, 0), prevA, b.At(j, 0), c)
	}
	left := func(i, j int) float64 {
		prevB := b.At(j, 0)
		if j > 0 {
			prevB = b.At(j-1, 0)
		}
		return msmCost(b.At(j, 0), prevB, a.At(i, 0), c)
	}
	buf := in.buf(b.L)
	return eapEval(a.L, b.L, diag, above, left, ub, buf)
}

// msmCost is the univariate split/merge cost: if x lies between y and z,
// the move is a free-ish realignment charged only the base cost c;
// otherwise it also pays the distance to the nearer of y, z.
func msmCost(x, y, z, c float64) float64 {
	lo, hi := y, z
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo <= x && x <= hi {
		return c
	}
	return c + math.Min(math.Abs(x-y), math.Abs(x-z))
}
