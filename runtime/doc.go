// Package runtime supplies the two pieces of machinery every parallel
// component in this module needs: a deterministic RNG hierarchy that hands
// out independent, reproducible streams to concurrent workers without any
// shared mutable RNG state, and a fixed-size worker pool for fanning work
// out across goroutines.
package runtime
