package loocv

import (
	"math"
	"sync/atomic"

	"github.com/katalvlaran/tempo/runtime"
	"github.com/katalvlaran/tempo/seq"
)

// Tune runs leave-one-out cross-validation over family's parameter grid
// against every row named by pool, and returns per-grid-point accuracy
// plus the best-performing grid point. Ties in accuracy favor the
// earlier (tighter-constrained) grid point, per Family's documented
// ordering.
//
// Each query's per-candidate distances are evaluated grid point by grid
// point, tightest first; every grid point after the first seeds its
// upper bound from the previous grid point's result for the same pair,
// which is always admissible since relaxing a constraint cannot increase
// the optimal alignment cost (see Family). Queries are evaluated
// concurrently through a runtime.Pool; each query owns its own
// scratch state, so no synchronization is needed beyond the atomic
// per-grid-point correctness counters.
func Tune(family Family, ds *seq.Dataset, pool seq.IndexSet, opts ...Option) (Result, error) {
	if family.Len() == 0 {
		return Result{}, loocvErrorf("Tune", ErrEmptyFamily)
	}
	if len(pool) < 2 {
		return Result{}, loocvErrorf("Tune", ErrTooFewRows)
	}
	cfg := newConfig(opts)

	k := family.Len()
	correct := make([]int64, k)

	p := runtime.NewPool(cfg.workers)
	hier := runtime.NewRNGHierarchy(cfg.rng.Int63())

	p.Run(len(pool), func(qi int) {
		queryIdx := pool[qi]
		query := ds.Row(queryIdx)
		trueLabel := ds.Label(queryIdx)

		candidates := make(seq.IndexSet, 0, len(pool)-1)
		for _, c := range pool {
			if c != queryIdx {
				candidates = append(candidates, c)
			}
		}

		prevDist := make([]float64, len(candidates))
		for i := range prevDist {
			prevDist[i] = math.Inf(1)
		}

		rng := hier.ForLOOCVQuery(qi)

		for g := 0; g < k; g++ {
			inst := family.At(g)
			bsf := math.Inf(1)
			bestIdx := -1
			ties := 0

			for ci, candIdx := range candidates {
				ub := prevDist[ci]
				if bsf < ub {
					ub = bsf
				}
				got := inst.Eval(query, ds.Row(candIdx), ub)
				prevDist[ci] = got
				if math.IsInf(got, 1) {
					continue
				}
				switch {
				case got < bsf:
					bsf = got
					bestIdx = candIdx
					ties = 1
				case got == bsf:
					ties++
					if rng.Intn(ties) == 0 {
						bestIdx = candIdx
					}
				}
			}

			if bestIdx >= 0 && ds.Label(bestIdx) == trueLabel {
				atomic.AddInt64(&correct[g], 1)
			}
		}
	})

	result := Result{
		Labels:  make([]string, k),
		Correct: make([]int, k),
		Total:   len(pool),
	}
	best := -1
	for g := 0; g < k; g++ {
		result.Labels[g] = family.Label(g)
		result.Correct[g] = int(correct[g])
		if best < 0 || result.Correct[g] > result.Correct[best] {
			best = g
		}
	}
	result.BestIndex = best
	return result, nil
}
