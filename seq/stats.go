package seq

import "gonum.org/v1/gonum/stat"

// StdDev returns the pooled sample mean and standard deviation of every
// channel value across every row named by indices, flattened into one
// population. Several distance measures (ERP's gv, ADTW's omega,
// LCSS's epsilon) are parameterized as fractions of this spread, per the
// Proximity Forest candidate-drawing distributions.
func StdDev(ds *Dataset, indices IndexSet) (mean, std float64) {
	if len(indices) == 0 {
		return 0, 0
	}
	var flat []float64
	for _, i := range indices {
		flat = append(flat, ds.Row(i).Values...)
	}
	if len(flat) < 2 {
		return flat[0], 0
	}
	return stat.MeanStdDev(flat, nil)
}
