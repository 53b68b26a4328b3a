package dist

// New validates params against the requirements of measure and returns a
// ready-to-use Instance. Each Instance owns its own Workspace scratch
// buffer; share an Instance only within a single goroutine, or construct
// one per worker (see the runtime package's pool).
func New(measure Measure, params Params) (Instance, error) {
	switch measure {
	case DTWMeasure, DirectMeasure:
		if params.Cost == nil {
			return Instance{}, distErrorf("New", ErrMissingCost)
		}
	case ADTWMeasure:
		if params.Cost == nil {
			return Instance{}, distErrorf("New", ErrMissingCost)
		}
		if params.Omega < 0 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
	case CDTWMeasure:
		if params.Cost == nil {
			return Instance{}, distErrorf("New", ErrMissingCost)
		}
		if params.Window < 0 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
	case WDTWMeasure:
		if params.Cost == nil {
			return Instance{}, distErrorf("New", ErrMissingCost)
		}
		if params.G < 0 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
	case ERPMeasure:
		if params.Cost == nil {
			return Instance{}, distErrorf("New", ErrMissingCost)
		}
		if params.Window < -1 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
		if params.Exponent <= 0 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
	case LCSSMeasure:
		if params.Window < -1 || params.Epsilon < 0 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
	case MSMMeasure:
		if params.C < 0 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
	case TWEMeasure:
		if params.Nu < 0 || params.Lambda < 0 {
			return Instance{}, distErrorf("New", ErrInvalidParam)
		}
	default:
		return Instance{}, distErrorf("New", ErrUnknownMeasure)
	}

	return Instance{measure: measure, params: params, ws: NewWorkspace(0)}, nil
}
