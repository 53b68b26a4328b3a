package dist

import "github.com/katalvlaran/tempo/seq"

// evalDTW is unconstrained Dynamic Time Warping: every step into (i, j),
// diagonal or not, pays the same pointwise cost. Grounded on the
// FullMatrix/RollingArray recurrence in the katalvlaran-lvlath dtw
// package, generalized onto the shared EAP skeleton.
func (in Instance) evalDTW(a, b seq.Sequence, ub float64) float64 {
	step := func(i, j int) float64 { return in.params.Cost(a, b, i, j) }
	buf := in.buf(b.L)
	return eapEval(a.L, b.L, step, step, step, ub, buf)
}

// evalCDTW is DTW restricted to a Sakoe-Chiba band of half-width
// Params.Window: cells with |i-j| > Window behave as +Inf, which the
// shared pruning pointers treat like any other unreachable cell.
func (in Instance) evalCDTW(a, b seq.Sequence, ub float64) float64 {
	w := in.params.Window
	step := func(i, j int) float64 {
		if w >= 0 && abs(i-j) > w {
			return posInf
		}
		return in.params.Cost(a, b, i, j)
	}
	buf := in.buf(b.L)
	return eapEval(a.L, b.L, step, step, step, ub, buf)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
