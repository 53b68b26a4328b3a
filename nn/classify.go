package nn

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tempo/dist"
	"github.com/katalvlaran/tempo/seq"
)

// Classify returns the index within candidates (as a dataset row index)
// closest to query under d, and the best-so-far distance achieved. Each
// successive candidate is evaluated with the current best-so-far as its
// upper bound, so the measure's early abandoning tightens as the search
// progresses. Ties are broken by reservoir sampling against rng, giving a
// uniform draw among every candidate achieving the winning distance; a nil
// rng always keeps the first candidate seen at a tied distance.
//
// If every candidate is infeasible (Eval returns +Inf for all of them),
// Classify returns (-1, +Inf).
func Classify(ds *seq.Dataset, query seq.Sequence, candidates seq.IndexSet, d dist.Instance, rng *rand.Rand) (bestIdx int, bsf float64) {
	bsf = math.Inf(1)
	bestIdx = -1
	ties := 0

	for _, idx := range candidates {
		got := d.Eval(query, ds.Row(idx), bsf)
		if math.IsInf(got, 1) {
			continue
		}
		switch {
		case got < bsf:
			bsf = got
			bestIdx = idx
			ties = 1
		case got == bsf:
			ties++
			if rng != nil && rng.Intn(ties) == 0 {
				bestIdx = idx
			}
		}
	}

	return bestIdx, bsf
}
