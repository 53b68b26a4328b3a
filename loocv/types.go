package loocv

import "github.com/katalvlaran/tempo/dist"

// Family enumerates a parameter grid for a single distance measure,
// ordered from the tightest-constrained grid point (largest distances,
// index 0) to the loosest (smallest distances, index Len()-1). That
// ordering is what lets Tune reuse each grid point's per-pair distance as
// an admissible upper bound for the next, looser grid point: relaxing a
// constraint can only shrink or preserve the optimal alignment cost, so
// results computed under a stricter parameterization always upper-bound
// the same pair's distance under a looser one.
type Family interface {
	// Len returns the number of grid points.
	Len() int
	// At returns the bound distance Instance for grid point k.
	At(k int) dist.Instance
	// Label describes grid point k for reporting (e.g. "w=3").
	Label(k int) string
}

// Result is the outcome of a LOOCV sweep: per grid point accuracy counts
// and the selected best point.
type Result struct {
	Labels    []string
	Correct   []int
	Total     int
	BestIndex int
}

// Accuracy returns the fraction of correct classifications at grid point k.
func (r Result) Accuracy(k int) float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Correct[k]) / float64(r.Total)
}
