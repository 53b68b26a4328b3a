package forest

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/tempo/dist"
	"github.com/katalvlaran/tempo/seq"
)

// splitter routes a row to one of its exemplars' labels by nearest
// distance under a single randomly-drawn measure.
type splitter struct {
	inst      dist.Instance
	exemplars map[int]int // label -> dataset row index
	branches  []int       // exemplar labels, fixed order for deterministic iteration
}

// route returns the label of the exemplar nearest to row under s.inst, with
// ties among exemplars at equal distance broken by reservoir sampling
// against rng (a nil rng keeps the first exemplar seen at a tied distance),
// the same pattern nn.Classify uses for 1-NN candidate ties.
func (s *splitter) route(ds *seq.Dataset, row seq.Sequence, rng *rand.Rand) int {
	best := s.branches[0]
	bestDist := s.inst.Eval(row, ds.Row(s.exemplars[best]), math.Inf(1))
	ties := 1
	for _, label := range s.branches[1:] {
		got := s.inst.Eval(row, ds.Row(s.exemplars[label]), bestDist)
		switch {
		case got < bestDist:
			bestDist = got
			best = label
			ties = 1
		case got == bestDist:
			ties++
			if rng != nil && rng.Intn(ties) == 0 {
				best = label
			}
		}
	}
	return best
}
