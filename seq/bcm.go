package seq

import "sort"

// ByClassMap (BCM) groups dataset row indices by label. Classes() returns
// the present label indices in deterministic ascending order; Pure reports
// whether the map holds exactly one class.
type ByClassMap struct {
	ds     *Dataset
	byLab  map[int][]int
	sorted []int
}

// NewByClassMap groups the rows named by indices according to ds's labels.
func NewByClassMap(ds *Dataset, indices IndexSet) *ByClassMap {
	byLab := make(map[int][]int)
	for _, i := range indices {
		lab := ds.Label(i)
		byLab[lab] = append(byLab[lab], i)
	}
	sorted := make([]int, 0, len(byLab))
	for lab := range byLab {
		sorted = append(sorted, lab)
	}
	sort.Ints(sorted)
	return &ByClassMap{ds: ds, byLab: byLab, sorted: sorted}
}

// Classes returns the label indices present in the map, ascending.
func (b *ByClassMap) Classes() []int { return b.sorted }

// Rows returns the row indices belonging to the given label, in the order
// they were inserted.
func (b *ByClassMap) Rows(label int) []int { return b.byLab[label] }

// Pure reports whether the map contains exactly one class.
func (b *ByClassMap) Pure() bool { return len(b.sorted) == 1 }

// Size returns the total number of rows across every class.
func (b *ByClassMap) Size() int {
	n := 0
	for _, lab := range b.sorted {
		n += len(b.byLab[lab])
	}
	return n
}

// Dataset returns the dataset this map's indices were drawn from.
func (b *ByClassMap) Dataset() *Dataset { return b.ds }

// IndexSet flattens the map back into a single IndexSet, classes in
// ascending order and rows within a class in insertion order.
func (b *ByClassMap) IndexSet() IndexSet {
	out := make(IndexSet, 0, b.Size())
	for _, lab := range b.sorted {
		out = append(out, b.byLab[lab]...)
	}
	return out
}

// Distribution returns the empirical label distribution over the map's
// rows: Distribution()[label] = count(label) / Size(). The returned slice
// is indexed by label, length ds.NumClasses().
func (b *ByClassMap) Distribution() []float64 {
	dist := make([]float64, b.ds.NumClasses())
	total := b.Size()
	if total == 0 {
		return dist
	}
	for _, lab := range b.sorted {
		dist[lab] = float64(len(b.byLab[lab])) / float64(total)
	}
	return dist
}

// MajorityClass returns the label with the most rows, lowest label index on
// a tie.
func (b *ByClassMap) MajorityClass() int {
	best, bestN := -1, -1
	for _, lab := range b.sorted {
		n := len(b.byLab[lab])
		if n > bestN {
			bestN, best = n, lab
		}
	}
	return best
}
