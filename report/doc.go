// Package report defines the JSON result records emitted by the cmd
// tools — loocv-tool's parameter sweep and nnk-grid's k-NN accuracy
// grid — and WriteJSON, which encodes them. The package does no logging;
// the cmd tools use the standard library log package directly.
package report
