package seq

// IndexSet is an ordered, duplicate-free collection of row indices into a
// Dataset. It is a plain []int; callers are responsible for maintaining the
// duplicate-free invariant when constructing one by hand.
type IndexSet []int

// Len returns the number of indices in the set.
func (is IndexSet) Len() int { return len(is) }

// View is a cheap, read-only reference to a subset of a Dataset's rows. It
// never copies sequence data; it only holds the owning dataset and an
// IndexSet of rows to expose.
type View struct {
	DS      *Dataset
	Indices IndexSet
}

// NewView builds a View over ds restricted to the given indices.
func NewView(ds *Dataset, indices IndexSet) View {
	return View{DS: ds, Indices: indices}
}

// Len returns the number of rows visible through the view.
func (v View) Len() int { return len(v.Indices) }

// Row returns the i-th visible row's sequence (i indexes into the view, not
// the underlying dataset).
func (v View) Row(i int) Sequence { return v.DS.Row(v.Indices[i]) }

// Label returns the i-th visible row's label (i indexes into the view).
func (v View) Label(i int) int { return v.DS.Label(v.Indices[i]) }

// RowIndex returns the underlying dataset row index for the i-th visible
// row.
func (v View) RowIndex(i int) int { return v.Indices[i] }
