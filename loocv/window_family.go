package loocv

import (
	"strconv"

	"github.com/katalvlaran/tempo/cost"
	"github.com/katalvlaran/tempo/dist"
)

// WindowFamily is a CDTW parameter grid over Sakoe-Chiba half-widths,
// ordered from the tightest window (index 0) to the widest (the final
// index), satisfying Family's monotonicity
// requirement: a wider band can only match or improve on a narrower
// band's best alignment.
type WindowFamily struct {
	Windows []int
	Cost    cost.PointCost
}

// NewWindowFamily builds a WindowFamily spanning windows 0..maxWindow
// inclusive, ascending, using the given pointwise cost.
func NewWindowFamily(maxWindow int, c cost.PointCost) WindowFamily {
	windows := make([]int, maxWindow+1)
	for i := range windows {
		windows[i] = i
	}
	return WindowFamily{Windows: windows, Cost: c}
}

func (f WindowFamily) Len() int { return len(f.Windows) }

func (f WindowFamily) At(k int) dist.Instance {
	inst, err := dist.New(dist.CDTWMeasure, dist.Params{Cost: f.Cost, Window: f.Windows[k]})
	if err != nil {
		panic(err)
	}
	return inst
}

func (f WindowFamily) Label(k int) string {
	return "w=" + strconv.Itoa(f.Windows[k])
}
