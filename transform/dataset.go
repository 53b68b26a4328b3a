package transform

import "github.com/katalvlaran/tempo/seq"

// Apply builds a new Dataset by applying fn to every row of ds,
// preserving labels and the label vocabulary.
func Apply(ds *seq.Dataset, fn func(seq.Sequence) seq.Sequence) (*seq.Dataset, error) {
	rows := make([]seq.Sequence, ds.Len())
	labels := make([]int, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		rows[i] = fn(ds.Row(i))
		labels[i] = ds.Label(i)
	}
	return seq.NewDataset(rows, labels, ds.Header().Labels)
}

// ApplyErr is Apply for a transform that can fail on a degenerate row
// (e.g. DerivativeSequence on a length-1 series).
func ApplyErr(ds *seq.Dataset, fn func(seq.Sequence) (seq.Sequence, error)) (*seq.Dataset, error) {
	rows := make([]seq.Sequence, ds.Len())
	labels := make([]int, ds.Len())
	for i := 0; i < ds.Len(); i++ {
		row, err := fn(ds.Row(i))
		if err != nil {
			return nil, err
		}
		rows[i] = row
		labels[i] = ds.Label(i)
	}
	return seq.NewDataset(rows, labels, ds.Header().Labels)
}
