package cost

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// ADE returns the univariate absolute-difference-to-exponent cost:
// ade(e)(A, i, B, j) = |A[i] - B[j]|^e.
func ADE(e float64) PointCost {
	return func(a, b seq.Sequence, i, j int) float64 {
		diff := math.Abs(a.At(i, 0) - b.At(j, 0))
		return math.Pow(diff, e)
	}
}

// SqE returns the squared-Euclidean cost across d channels:
// sqeN(A, i, B, j, D) = sum_c (A[i,c] - B[j,c])^2.
func SqE(d int) PointCost {
	return func(a, b seq.Sequence, i, j int) float64 {
		var sum float64
		for c := 0; c < d; c++ {
			diff := a.At(i, c) - b.At(j, c)
			sum += diff * diff
		}
		return sum
	}
}

// ADEGap returns the univariate gap-value cost used by ERP's border rows:
// adegv(e)(A, i, gv) = |A[i] - gv|^e.
func ADEGap(e, gv float64) GapCost {
	return func(a seq.Sequence, i int) float64 {
		diff := math.Abs(a.At(i, 0) - gv)
		return math.Pow(diff, e)
	}
}
