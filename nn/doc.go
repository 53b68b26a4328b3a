// Package nn implements the 1-nearest-neighbor primitive used by the
// nnk-grid command (forest's splitter routing and loocv's tuner run the
// same scan-and-tie-break pattern in their own loops): given a
// query sequence and a pool of labeled candidates, find the closest one
// under a bound distance measure, using each candidate's running
// best-so-far distance as the next candidate's upper bound.
package nn
