package dist

import "github.com/katalvlaran/tempo/cost"

// Measure identifies one of the nine elastic distance kernels.
type Measure int

const (
	// DTWMeasure is unconstrained Dynamic Time Warping.
	DTWMeasure Measure = iota
	// CDTWMeasure is DTW constrained to a Sakoe-Chiba band of half-width Window.
	CDTWMeasure
	// WDTWMeasure is DTW with a logistic weight, indexed by |i-j|, on every cell's cost.
	WDTWMeasure
	// ADTWMeasure is DTW with an additive penalty Omega on non-diagonal steps.
	ADTWMeasure
	// ERPMeasure is Edit distance with Real Penalty, windowed, with gap value GapValue.
	ERPMeasure
	// LCSSMeasure is Longest Common Subsequence distance, windowed, with tolerance Epsilon.
	LCSSMeasure
	// MSMMeasure is Move-Split-Merge with edit cost C.
	MSMMeasure
	// TWEMeasure is Time Warp Edit distance with stiffness Nu and penalty Lambda.
	TWEMeasure
	// DirectMeasure is plain elementwise alignment; requires equal lengths.
	DirectMeasure
)

// NoWindow means "no Sakoe-Chiba band restriction" for measures that accept
// a Window parameter.
const NoWindow = -1

// Params bundles every parameter any measure might need. Only the fields
// relevant to the chosen Measure are read; New validates the ones it needs
// and ignores the rest.
type Params struct {
	// Cost is the pointwise cost, used by DTW, CDTW, WDTW, ADTW, ERP's
	// diagonal step, and direct alignment. Required for those measures;
	// MSM, TWE, and LCSS do not read it.
	Cost cost.PointCost

	// Window is the Sakoe-Chiba half-band width for CDTW, ERP, and LCSS.
	// NoWindow disables the restriction for ERP and LCSS; CDTW requires
	// Window >= 0.
	Window int

	// G is WDTW's logistic steepness parameter.
	G float64

	// Omega is ADTW's additive penalty on non-diagonal steps.
	Omega float64

	// GapValue is ERP's reference value for gap (indel) costs.
	GapValue float64
	// Exponent is the exponent e of ERP's gap cost |x - GapValue|^e
	// (adegv(e)); ERP's diagonal step uses Cost.
	Exponent float64

	// Epsilon is LCSS's match tolerance.
	Epsilon float64

	// C is MSM's split/merge cost.
	C float64

	// Nu is TWE's stiffness parameter (match penalty factor).
	Nu float64
	// Lambda is TWE's constant warp penalty.
	Lambda float64
}

// Instance is a bound distance closure: a measure plus its parameters,
// ready to evaluate on a pair of sequences.
type Instance struct {
	measure Measure
	params  Params
	ws      *Workspace
}

// Measure returns the instance's measure identifier.
func (in Instance) Measure() Measure { return in.measure }
