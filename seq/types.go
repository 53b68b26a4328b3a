package seq

import "math"

// Sequence is a fixed-length run of D parallel channels, channel-interleaved
// by timestep: Values[t*D+d] is the value of channel d at time t.
type Sequence struct {
	Values []float64
	D      int
	L      int
}

// NewSequence validates values against the given channel count and returns a
// Sequence. len(values) must be an exact multiple of D; NaN is rejected.
func NewSequence(values []float64, d int) (Sequence, error) {
	if d <= 0 {
		return Sequence{}, seqErrorf("NewSequence", ErrDimensionMismatch)
	}
	if len(values)%d != 0 {
		return Sequence{}, seqErrorf("NewSequence", ErrBadLength)
	}
	for _, v := range values {
		if math.IsNaN(v) {
			return Sequence{}, seqErrorf("NewSequence", ErrNaN)
		}
	}
	return Sequence{Values: values, D: d, L: len(values) / d}, nil
}

// At returns the value of channel ch at time t. Callers must ensure
// 0 <= t < L and 0 <= ch < D; At does not bounds-check on the hot path.
func (s Sequence) At(t, ch int) float64 {
	return s.Values[t*s.D+ch]
}

// Empty reports whether the sequence has zero length.
func (s Sequence) Empty() bool {
	return s.L == 0
}

// Header summarizes dataset-wide metadata: the label vocabulary, the
// channel count, and length statistics across all rows.
type Header struct {
	Labels     []string
	LabelIndex map[string]int
	D          int
	Lmin       int
	Lmax       int
	Size       int
}

// Dataset is an ordered, immutable collection of (Sequence, label index)
// pairs plus a Header. Construct via NewDataset; Dataset is never mutated
// after construction, so it may be shared read-only across goroutines.
type Dataset struct {
	rows   []Sequence
	labels []int
	header Header
}

// NewDataset builds a Dataset from parallel rows/labels slices and a label
// vocabulary. It validates that every row shares the same D, that every
// label index is in range, and computes Lmin/Lmax.
func NewDataset(rows []Sequence, labels []int, labelNames []string) (*Dataset, error) {
	if len(rows) == 0 {
		return nil, seqErrorf("NewDataset", ErrEmptyDataset)
	}
	if len(rows) != len(labels) {
		return nil, seqErrorf("NewDataset", ErrDimensionMismatch)
	}
	d := rows[0].D
	lmin, lmax := rows[0].L, rows[0].L
	for i, r := range rows {
		if r.D != d {
			return nil, seqErrorf("NewDataset", ErrDimensionMismatch)
		}
		if r.L < lmin {
			lmin = r.L
		}
		if r.L > lmax {
			lmax = r.L
		}
		if labels[i] < 0 || labels[i] >= len(labelNames) {
			return nil, seqErrorf("NewDataset", ErrLabelUnknown)
		}
	}

	labelIndex := make(map[string]int, len(labelNames))
	for i, name := range labelNames {
		labelIndex[name] = i
	}

	ds := &Dataset{
		rows:   rows,
		labels: append([]int(nil), labels...),
		header: Header{
			Labels:     append([]string(nil), labelNames...),
			LabelIndex: labelIndex,
			D:          d,
			Lmin:       lmin,
			Lmax:       lmax,
			Size:       len(rows),
		},
	}
	return ds, nil
}

// Len returns the number of rows in the dataset.
func (ds *Dataset) Len() int { return len(ds.rows) }

// Row returns the sequence at index i.
func (ds *Dataset) Row(i int) Sequence { return ds.rows[i] }

// Label returns the label index for row i.
func (ds *Dataset) Label(i int) int { return ds.labels[i] }

// Header returns the dataset's header.
func (ds *Dataset) Header() Header { return ds.header }

// ClassName returns the label string for a label index.
func (ds *Dataset) ClassName(label int) string { return ds.header.Labels[label] }

// NumClasses returns the size of the label vocabulary.
func (ds *Dataset) NumClasses() int { return len(ds.header.Labels) }

// AllIndices returns an IndexSet covering every row in the dataset, in
// ascending order.
func (ds *Dataset) AllIndices() IndexSet {
	idx := make([]int, ds.Len())
	for i := range idx {
		idx[i] = i
	}
	return IndexSet(idx)
}
