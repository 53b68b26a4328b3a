// Package seq defines the sequence and dataset model shared by every
// distance kernel, the 1-NN primitive, LOOCV, and the Proximity Forest.
//
// A Sequence is a fixed-length, channel-interleaved run of float64 values:
// D parallel channels of equal length L, stored as value(t, d) at offset
// t*D + d. A Dataset is an ordered, immutable collection of (Sequence,
// label) pairs plus a Header summarizing label strings, the label<->index
// encoding, and length statistics across the dataset.
//
// IndexSet and View give cheap, read-only subsets of a Dataset's rows
// without copying sequence data; ByClassMap groups row indices by label
// for tree induction and LOOCV bookkeeping.
package seq
