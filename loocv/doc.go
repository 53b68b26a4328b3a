// Package loocv implements leave-one-out cross-validation over a grid of
// candidate parameter values for a distance family, reusing each
// query-candidate pair's distance at one grid point as an upper bound for
// the same pair at the next, looser grid point via the grid's monotone
// ordering, rather than re-running 1-NN from scratch per candidate value.
package loocv
