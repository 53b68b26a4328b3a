package forest

import (
	"math/rand"

	"github.com/katalvlaran/tempo/cost"
	"github.com/katalvlaran/tempo/dist"
	"github.com/katalvlaran/tempo/seq"
)

// candidateMeasures lists the measures a splitter is drawn from. Direct
// alignment is excluded: it carries no tunable parameter to randomize and
// requires equal-length rows, which a class-mixed node cannot guarantee.
var candidateMeasures = []dist.Measure{
	dist.DTWMeasure,
	dist.CDTWMeasure,
	dist.WDTWMeasure,
	dist.ADTWMeasure,
	dist.ERPMeasure,
	dist.LCSSMeasure,
	dist.MSMMeasure,
	dist.TWEMeasure,
}

// msmGrid and tweNuGrid are the discrete parameter grids used by Move-
// Split-Merge and Time Warp Edit's stiffness, following the geometric
// grids proposed alongside the original Proximity Forest measures.
var msmGrid = []float64{0.01, 0.1, 1, 10, 100}
var tweNuGrid = []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1}
var tweLambdaGrid = []float64{0, 0.25, 0.5, 0.75, 1}

// drawMeasure picks one of candidateMeasures uniformly at random.
func drawMeasure(rng *rand.Rand) dist.Measure {
	return candidateMeasures[rng.Intn(len(candidateMeasures))]
}

// drawParams instantiates random parameters for measure, scaled by the
// pooled mean/std of the node's rows so that gap, tolerance, and penalty
// values stay in a range meaningful for the data at hand.
func drawParams(measure dist.Measure, rng *rand.Rand, ds *seq.Dataset, rows seq.IndexSet, d int) dist.Params {
	_, std := seq.StdDev(ds, rows)
	if std == 0 {
		std = 1
	}
	maxLen := ds.Header().Lmax
	p := dist.Params{Cost: cost.SqE(d)}

	switch measure {
	case dist.DTWMeasure, dist.ADTWMeasure:
		p.Omega = rng.Float64() * std
	case dist.CDTWMeasure:
		p.Window = randWindow(rng, maxLen)
	case dist.WDTWMeasure:
		p.G = rng.Float64()
	case dist.ERPMeasure:
		p.Cost = cost.ADE(1)
		p.Exponent = 1
		p.Window = randWindow(rng, maxLen)
		p.GapValue = rng.Float64() * std
	case dist.LCSSMeasure:
		p.Window = randWindow(rng, maxLen)
		p.Epsilon = rng.Float64() * std
		if p.Epsilon == 0 {
			p.Epsilon = std / 10
		}
	case dist.MSMMeasure:
		p.C = msmGrid[rng.Intn(len(msmGrid))]
	case dist.TWEMeasure:
		p.Nu = tweNuGrid[rng.Intn(len(tweNuGrid))]
		p.Lambda = tweLambdaGrid[rng.Intn(len(tweLambdaGrid))]
	}
	return p
}

func randWindow(rng *rand.Rand, maxLen int) int {
	upper := maxLen / 4
	if upper < 1 {
		return 0
	}
	return rng.Intn(upper + 1)
}

// drawInstance draws a full random measure+params splitter distance,
// falling back to DTW if the drawn configuration fails validation (which
// should not happen given the ranges above, but New's contract is
// authoritative).
func drawInstance(rng *rand.Rand, ds *seq.Dataset, rows seq.IndexSet) dist.Instance {
	d := ds.Header().D
	measure := drawMeasure(rng)
	params := drawParams(measure, rng, ds, rows, d)
	inst, err := dist.New(measure, params)
	if err != nil {
		inst, _ = dist.New(dist.DTWMeasure, dist.Params{Cost: cost.SqE(d)})
	}
	return inst
}
