package dist

import "github.com/katalvlaran/tempo/seq"

// evalADTW is amerced DTW: the diagonal step pays the plain pointwise
// cost, while the two non-diagonal steps pay an additional constant
// penalty Omega, discouraging warping without forbidding it outright the
// way a hard Sakoe-Chiba band does.
func (in Instance) evalADTW(a, b seq.Sequence, ub float64) float64 {
	omega := in.params.Omega
	diag := func(i, j int) float64 { return in.params.Cost(a, b, i, j) }
	nonDiag := func(i, j int) float64 { return in.params.Cost(a, b, i, j) + omega }
	buf := in.buf(b.L)
	return eapEval(a.L, b.L, diag, nonDiag, nonDiag, ub, buf)
}
