// Package tempo is a library for classifying time series with elastic
// distance measures and randomized nearest-exemplar ensembles.
//
// What is tempo?
//
//	A pure-Go toolkit that brings together:
//		- Nine elastic distance kernels sharing one early-abandoning,
//		  pruned dynamic-programming skeleton: DTW, CDTW, WDTW, ADTW, ERP,
//		  LCSS, MSM, TWE, and direct alignment
//		- A 1-nearest-neighbor primitive built on those kernels
//		- Leave-one-out cross-validation for tuning a measure's parameter
//		  grid without re-running the search from scratch per candidate
//		- A Proximity Forest: an ensemble of randomized 1-NN splitter trees
//
// Under the hood, everything is organized into single-concern packages:
//
//	seq/       — the sequence and dataset model shared by every package
//	cost/      — pointwise and gap cost functions fed into the distance kernels
//	dist/      — the nine elastic distance kernels
//	nn/        — the 1-nearest-neighbor primitive
//	loocv/     — leave-one-out parameter tuning
//	forest/    — the Proximity Forest ensemble classifier
//	runtime/   — deterministic RNG streams and a bounded worker pool
//	tsio/      — reading ".ts" format datasets
//	transform/ — series pre-processing (normalization, differencing)
//	report/    — JSON result records for the cmd tools
//
//	go get github.com/katalvlaran/tempo
package tempo
