package dist

import "math"

// posInf is the sentinel cost returned by step closures for a cell a
// measure's band or contract forbids ever reaching.
var posInf = math.Inf(1)
