package loocv

import "math/rand"

// config holds Tune's tunable knobs, assembled from Options.
type config struct {
	rng     *rand.Rand
	workers int
}

func newConfig(opts []Option) config {
	c := config{rng: rand.New(rand.NewSource(1)), workers: 0}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Option customizes a Tune call.
type Option func(*config)

// WithRand sets the RNG used to break nearest-neighbor ties. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("loocv: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithWorkers bounds the number of goroutines Tune uses to evaluate
// queries concurrently. n <= 0 means runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}
