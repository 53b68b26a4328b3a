// Package cost provides the pointwise cost functions consumed by the dist
// kernels. Each constructor returns a small, allocation-free closure that
// computes the per-cell cost of aligning one timestep of a sequence A
// against one timestep of a sequence B (or, for the Gap variants, against a
// fixed reference value used by ERP's border rows).
//
// Costs are pure: they read only their closed-over parameters and the two
// sequences passed at call time, never allocate, and tolerate i, j at the
// series endpoints (i==0, j==0, i==L-1, j==L-1).
package cost
