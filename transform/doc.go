// Package transform implements the pre-processing steps commonly applied
// to time series before distance-based classification: per-channel
// mean-centering, min-max scaling, unit-length scaling, z-normalization,
// and first-order differencing. Each transform operates independently on
// every row and channel of a Dataset, and is implemented directly over
// seq.Sequence with the standard library: none of the example corpus's
// third-party dependencies cover this narrow a numerical concern (see
// DESIGN.md).
package transform
