package forest

// TrainConfig bundles Train's tunable knobs, assembled from TrainOptions.
type TrainConfig struct {
	trees            int
	candidatesPerNode int
	maxDepth         int
	seed             int64
	workers          int
}

func newTrainConfig(opts []TrainOption) TrainConfig {
	c := TrainConfig{trees: 100, candidatesPerNode: 5, maxDepth: 1000, seed: 1, workers: 0}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// TrainOption customizes a Train call.
type TrainOption func(*TrainConfig)

// WithTrees sets the number of trees in the forest. Panics if n <= 0.
func WithTrees(n int) TrainOption {
	if n <= 0 {
		panic("forest: WithTrees(n<=0)")
	}
	return func(c *TrainConfig) { c.trees = n }
}

// WithCandidatesPerNode sets how many random splitters are drawn and
// scored at each internal node. Panics if r <= 0.
func WithCandidatesPerNode(r int) TrainOption {
	if r <= 0 {
		panic("forest: WithCandidatesPerNode(r<=0)")
	}
	return func(c *TrainConfig) { c.candidatesPerNode = r }
}

// WithMaxDepth bounds tree depth. Panics if d <= 0.
func WithMaxDepth(d int) TrainOption {
	if d <= 0 {
		panic("forest: WithMaxDepth(d<=0)")
	}
	return func(c *TrainConfig) { c.maxDepth = d }
}

// WithSeed sets the forest's root RNG seed for reproducible training.
func WithSeed(seed int64) TrainOption {
	return func(c *TrainConfig) { c.seed = seed }
}

// WithTrainWorkers bounds concurrent tree construction. n <= 0 means
// runtime.NumCPU().
func WithTrainWorkers(n int) TrainOption {
	return func(c *TrainConfig) { c.workers = n }
}

// PredictConfig bundles Predict's tunable knobs.
type PredictConfig struct {
	workers int
	seed    int64
}

func newPredictConfig(opts []PredictOption) PredictConfig {
	c := PredictConfig{workers: 0, seed: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// PredictOption customizes a Predict call.
type PredictOption func(*PredictConfig)

// WithPredictWorkers bounds concurrent tree evaluation. n <= 0 means
// runtime.NumCPU().
func WithPredictWorkers(n int) PredictOption {
	return func(c *PredictConfig) { c.workers = n }
}

// WithPredictSeed sets the root seed of the per-tree RNG streams used to
// break splitter-routing ties during descent, the same
// runtime.RNGHierarchy.ForTree derivation Train uses for tree construction.
func WithPredictSeed(seed int64) PredictOption {
	return func(c *PredictConfig) { c.seed = seed }
}
