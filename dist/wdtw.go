package dist

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// evalWDTW is DTW with a logistic weight applied to every cell's pointwise
// cost, penalizing alignments that stray far from the diagonal. Weight
// table grounded on the same "precompute once, index by |i-j|" idiom the
// katalvlaran-lvlath dtw package uses for its cost caches.
func (in Instance) evalWDTW(a, b seq.Sequence, ub float64) float64 {
	m := a.L
	if b.L > m {
		m = b.L
	}
	weights := wdtwWeights(m, in.params.G)

	step := func(i, j int) float64 {
		k := i - j
		if k < 0 {
			k = -k
		}
		return weights[k] * in.params.Cost(a, b, i, j)
	}
	buf := in.buf(b.L)
	return eapEval(a.L, b.L, step, step, step, ub, buf)
}

// wdtwWeights returns the logistic weight table w[k] = 1/(1+exp(-g*(k-mid))),
// for k in [0, n), where mid = n/2, per Jeong et al.'s weighted DTW.
func wdtwWeights(n int, g float64) []float64 {
	w := make([]float64, n)
	mid := float64(n) / 2
	for k := 0; k < n; k++ {
		w[k] = 1 / (1 + math.Exp(-g*(float64(k)-mid)))
	}
	return w
}
