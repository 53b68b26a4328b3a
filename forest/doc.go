// Package forest implements a Proximity Forest: an ensemble of randomized
// 1-nearest-exemplar splitter trees over the elastic distance kernels in
// dist. Each internal node draws a handful of candidate splitters — a
// random measure, random parameters, and one random exemplar row per
// class present at that node — scores them by Gini gain, and keeps the
// best. A query descends a tree by always following the branch of its
// nearest candidate exemplar, reaching a leaf whose class distribution is
// the tree's output; the forest predicts the equal-weight average of those
// distributions across its trees.
package forest
