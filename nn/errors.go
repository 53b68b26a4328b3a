package nn

import "errors"

// ErrNoCandidates names the empty-candidate-set condition. Classify does
// not return it: an empty candidate set yields (-1, +Inf), the same result
// as a set whose candidates are all infeasible.
var ErrNoCandidates = errors.New("nn: no candidates")
