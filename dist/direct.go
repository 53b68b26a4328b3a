package dist

import "github.com/katalvlaran/tempo/seq"

// evalDirect sums the pointwise cost at matching indices with no warping.
// Both sequences must share a length; a length mismatch is a caller
// contract violation reported as +Inf rather than a panic, so a
// misconfigured pipeline degrades a candidate's score instead of crashing
// a running classifier.
func (in Instance) evalDirect(a, b seq.Sequence) float64 {
	if a.L != b.L {
		return posInf
	}
	var sum float64
	for i := 0; i < a.L; i++ {
		sum += in.params.Cost(a, b, i, i)
	}
	return sum
}
