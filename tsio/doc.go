// Package tsio reads time-series datasets from the sktime/UCR ".ts" text
// format: a run of "@directive" header lines followed by an "@data"
// section whose rows hold one series each, channels separated by ":" and
// samples within a channel separated by ",", with an optional trailing
// class label token per row when "@classLabel true ..." was declared.
package tsio
