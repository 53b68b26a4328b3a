package cost

import "github.com/katalvlaran/tempo/seq"

// PointCost computes the cost of aligning timestep i of a against timestep
// j of b. Implementations must be pure and allocation-free.
type PointCost func(a, b seq.Sequence, i, j int) float64

// GapCost computes the cost of aligning timestep i of a against a fixed gap
// reference value, used by ERP's border rows (M(0,j), M(i,0)).
type GapCost func(a seq.Sequence, i int) float64
