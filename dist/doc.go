// Package dist implements the elastic distance kernels — DTW, CDTW, WDTW,
// ADTW, ERP, LCSS, MSM, TWE, and direct (Euclidean-style) alignment — that
// the rest of the module builds on.
//
// Early abandoning and pruning (EAP):
//
//	Every kernel except LCSS and direct alignment shares one
//	dynamic-programming skeleton: a double-buffered row pair sized to the
//	second sequence's length plus a pair of per-row pruning
//	pointers (next_start, prev_pp) that let the kernel stop as soon as an
//	entire row's remaining cells are guaranteed to exceed the caller's
//	upper bound. Passing +Inf as the bound disables early abandoning but
//	keeps a diagonal-walk heuristic bound for pruning; passing NaN disables
//	both and forces a full DP pass, useful as a bit-exact reference.
//
// Key properties (see DESIGN.md for the grounding and the TESTABLE
// PROPERTIES section of SPEC_FULL.md for the exact invariants):
//   - dist(A, A) == 0 exactly, for every measure.
//   - a finite result never depends on whether pruning triggered: it always
//     equals the value a naive full DP would compute, with the same
//     floating-point operation order.
//   - windowed skeleton measures (CDTW, ERP) enforce their band by making
//     out-of-band cells behave as +Inf costs, which the same pruning
//     pointers then treat exactly like any other unreachable cell. LCSS
//     counts out-of-band cells as zero matches.
//
// Usage:
//
//	inst, err := dist.New(dist.DTWMeasure, dist.Params{Cost: cost.SqE(1)})
//	d := inst.Eval(a, b, math.Inf(1)) // EAP from the diagonal heuristic
package dist
