package forest

import (
	"github.com/katalvlaran/tempo/runtime"
	"github.com/katalvlaran/tempo/seq"
)

// Forest is a trained Proximity Forest ensemble: a shared, read-only
// Dataset and the trees built over it. A Forest owns its trees; every
// tree shares the same Dataset rather than copying rows.
type Forest struct {
	ds    *seq.Dataset
	trees []*Tree
}

// Train builds a Forest of TrainConfig.trees trees over ds, each induced
// on the full row set (bagging is intentionally omitted: Proximity
// Forest's diversity comes from randomized splitters, not resampling).
// Tree construction runs concurrently across a runtime.Pool sized by
// WithTrainWorkers.
func Train(ds *seq.Dataset, opts ...TrainOption) (*Forest, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, forestErrorf("Train", ErrEmptyDataset)
	}
	cfg := newTrainConfig(opts)
	if cfg.trees <= 0 {
		return nil, forestErrorf("Train", ErrNoTrees)
	}

	hier := runtime.NewRNGHierarchy(cfg.seed)
	trees := make([]*Tree, cfg.trees)
	pool := runtime.NewPool(cfg.workers)

	pool.Run(cfg.trees, func(i int) {
		rng := hier.ForTree(i)
		tree, err := buildTree(ds, ds.AllIndices(), rng, cfg)
		if err != nil {
			return
		}
		trees[i] = tree
	})

	built := trees[:0]
	for _, t := range trees {
		if t != nil {
			built = append(built, t)
		}
	}

	return &Forest{ds: ds, trees: built}, nil
}

// Predict returns the class-probability vector for query, indexed by label
// and summing to 1: the equal-weight average, across every tree, of the
// class-distribution vector at the leaf query's descent reaches. Each
// tree's descent breaks splitter-routing ties with its own deterministic
// RNG stream (see WithPredictSeed), derived the same way Train derives its
// per-tree construction streams.
func (f *Forest) Predict(query seq.Sequence, opts ...PredictOption) ([]float64, error) {
	if f == nil || len(f.trees) == 0 {
		return nil, forestErrorf("Predict", ErrNotTrained)
	}
	cfg := newPredictConfig(opts)
	hier := runtime.NewRNGHierarchy(cfg.seed)

	leafDists := make([][]float64, len(f.trees))
	pool := runtime.NewPool(cfg.workers)
	pool.Run(len(f.trees), func(i int) {
		leafDists[i] = f.trees[i].predict(query, hier.ForTree(i))
	})

	numClasses := f.ds.NumClasses()
	avg := make([]float64, numClasses)
	for _, d := range leafDists {
		for label, p := range d {
			avg[label] += p
		}
	}
	n := float64(len(f.trees))
	for label := range avg {
		avg[label] /= n
	}
	return avg, nil
}

// NumTrees returns the number of successfully trained trees.
func (f *Forest) NumTrees() int { return len(f.trees) }
