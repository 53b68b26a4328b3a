package forest

import (
	"math/rand"

	"github.com/katalvlaran/tempo/seq"
)

// Tree is one randomized splitter tree over a shared, read-only Dataset.
type Tree struct {
	ds   *seq.Dataset
	root *node
}

func buildTree(ds *seq.Dataset, indices seq.IndexSet, rng *rand.Rand, cfg TrainConfig) (*Tree, error) {
	bcm := seq.NewByClassMap(ds, indices)
	root := buildNode(ds, bcm, rng, cfg, 0)
	return &Tree{ds: ds, root: root}, nil
}

func buildNode(ds *seq.Dataset, bcm *seq.ByClassMap, rng *rand.Rand, cfg TrainConfig, depth int) *node {
	if bcm.Pure() || bcm.Size() <= 1 || depth >= cfg.maxDepth {
		return leafFrom(bcm)
	}

	classes := bcm.Classes()
	if len(classes) < 2 {
		return leafFrom(bcm)
	}

	var best *splitter
	var bestPartition map[int][]int
	bestImpurity := 2.0 // Gini impurity is always < 2

	rows := bcm.IndexSet()
	for r := 0; r < cfg.candidatesPerNode; r++ {
		cand := drawSplitter(ds, bcm, classes, rng)
		partition := partitionRows(ds, cand, rows, rng)

		counts := make(map[int]map[int]int, len(partition))
		for label, idxs := range partition {
			c := make(map[int]int)
			for _, idx := range idxs {
				c[ds.Label(idx)]++
			}
			counts[label] = c
		}
		impurity := weightedGini(counts, len(rows))
		if impurity < bestImpurity {
			bestImpurity = impurity
			best = cand
			bestPartition = partition
		}
	}

	if best == nil || nonEmptyBranches(bestPartition) < 2 {
		return leafFrom(bcm)
	}

	children := make(map[int]*node, len(bestPartition))
	for label, idxs := range bestPartition {
		if len(idxs) == 0 {
			// No row routed to this branch (possible only when the branch's
			// own exemplar ties another exemplar and the tie-break sends it
			// elsewhere). Keep the branch count stable with a singleton-empty
			// leaf that predicts the branch's own class with full confidence,
			// rather than silently dropping the branch from children.
			children[label] = singletonEmptyLeaf(label, ds.NumClasses())
			continue
		}
		childBCM := seq.NewByClassMap(ds, seq.IndexSet(idxs))
		children[label] = buildNode(ds, childBCM, rng, cfg, depth+1)
	}
	if len(children) < 2 {
		return leafFrom(bcm)
	}

	return &node{split: best, children: children, label: bcm.MajorityClass(), distribution: bcm.Distribution()}
}

func drawSplitter(ds *seq.Dataset, bcm *seq.ByClassMap, classes []int, rng *rand.Rand) *splitter {
	exemplars := make(map[int]int, len(classes))
	branches := make([]int, 0, len(classes))
	for _, label := range classes {
		rowsOfLabel := bcm.Rows(label)
		pick := rowsOfLabel[rng.Intn(len(rowsOfLabel))]
		exemplars[label] = pick
		branches = append(branches, label)
	}
	inst := drawInstance(rng, ds, bcm.IndexSet())
	return &splitter{inst: inst, exemplars: exemplars, branches: branches}
}

func partitionRows(ds *seq.Dataset, s *splitter, rows seq.IndexSet, rng *rand.Rand) map[int][]int {
	partition := make(map[int][]int, len(s.branches))
	for _, label := range s.branches {
		partition[label] = nil // keep every branch present even if it stays empty
	}
	for _, idx := range rows {
		branch := s.route(ds, ds.Row(idx), rng)
		partition[branch] = append(partition[branch], idx)
	}
	return partition
}

// nonEmptyBranches counts how many branches a partition actually routed
// rows into; every branch label is always a key (see partitionRows), so a
// raw key count no longer distinguishes a real split from a degenerate one.
func nonEmptyBranches(partition map[int][]int) int {
	n := 0
	for _, idxs := range partition {
		if len(idxs) > 0 {
			n++
		}
	}
	return n
}

func leafFrom(bcm *seq.ByClassMap) *node {
	dist := bcm.Distribution()
	return &node{leaf: true, label: bcm.MajorityClass(), distribution: dist}
}

// singletonEmptyLeaf stands in for a branch that received no training rows:
// it predicts its own branch label with full confidence, as if it held one
// singleton example of that class, so the branch count stays stable instead
// of being silently dropped from children.
func singletonEmptyLeaf(label, numClasses int) *node {
	dist := make([]float64, numClasses)
	dist[label] = 1
	return &node{leaf: true, label: label, distribution: dist}
}

// predict descends the tree from the root, following the branch of the
// nearest exemplar (ties broken by rng) at each internal node, and returns
// the reached leaf's class-distribution vector, indexed by label and
// summing to 1.
func (t *Tree) predict(query seq.Sequence, rng *rand.Rand) []float64 {
	n := t.root
	for !n.leaf {
		branch := n.split.route(t.ds, query, rng)
		child, ok := n.children[branch]
		if !ok {
			return n.distribution
		}
		n = child
	}
	return n.distribution
}
