package dist

import (
	"math"

	"github.com/katalvlaran/tempo/seq"
)

// evalLCSS is Longest Common Subsequence distance. Unlike the other eight
// measures, its recurrence maximizes a match count rather than minimizing
// a sum of step costs, so it does not reduce to the shared diag/above/left
// skeleton: a mismatch cell takes max(above, left) with no diagonal term,
// while a match cell takes only the diagonal term plus one. It keeps the
// same double-buffered row pair sized to b's length and a coarser, row-level
// early abandon in place of per-cell pruning pointers (see DESIGN.md).
func (in Instance) evalLCSS(a, b seq.Sequence, ub float64) float64 {
	nblines, nbcols := a.L, b.L
	if nblines == 0 && nbcols == 0 {
		return 0
	}
	if nblines == 0 || nbcols == 0 {
		return posInf
	}

	w := in.params.Window
	eps := in.params.Epsilon
	minLen := nblines
	if nbcols < minLen {
		minLen = nbcols
	}

	target := -1
	if !math.IsNaN(ub) && !math.IsInf(ub, 1) {
		target = int(math.Ceil((1 - ub) * float64(minLen)))
	}

	prev := make([]int, nbcols)
	curr := make([]int, nbcols)

	for i := 0; i < nblines; i++ {
		leftVal := 0 // M(i, -1)
		rowMax := 0
		for j := 0; j < nbcols; j++ {
			if w >= 0 && abs(i-j) > w {
				curr[j] = 0
				leftVal = curr[j]
				continue
			}
			diagVal := 0 // M(i-1, j-1)
			if i > 0 && j > 0 {
				diagVal = prev[j-1]
			}
			aboveVal := 0 // M(i-1, j)
			if i > 0 {
				aboveVal = prev[j]
			}
			var v int
			if math.Abs(a.At(i, 0)-b.At(j, 0)) <= eps {
				v = diagVal + 1
			} else {
				v = aboveVal
				if leftVal > v {
					v = leftVal
				}
			}
			curr[j] = v
			leftVal = v
			if v > rowMax {
				rowMax = v
			}
		}

		if target >= 0 {
			remaining := nblines - 1 - i
			if rowMax+remaining < target {
				return posInf
			}
		}

		prev, curr = curr, prev
	}

	matches := prev[nbcols-1]
	return 1 - float64(matches)/float64(minLen)
}
