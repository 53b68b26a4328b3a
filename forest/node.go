package forest

// node is either a leaf carrying a majority label and class distribution,
// or an internal node carrying a splitter and one child per branch label.
type node struct {
	leaf         bool
	label        int
	distribution []float64

	split    *splitter
	children map[int]*node
}
