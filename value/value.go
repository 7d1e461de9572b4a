package value

import (
	"fmt"
	"math"
	"strconv"

	"github.com/uyouii/measurement-stats/utils"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// ValueUncertainty is a measurement carrying its own uncertainty. The raw
// parts are kept unrounded for computation, Value and Uncertainty are the
// rounded display forms.
//
// Arithmetic never mutates its operands. Update, SetRaw, SetRawUncertainty,
// Freeze and FromDict are the only mutators.
type ValueUncertainty struct {
	raw            float64
	rawUncertainty float64
}

func New(value, uncertainty float64) ValueUncertainty {
	return ValueUncertainty{
		raw:            value,
		rawUncertainty: math.Abs(uncertainty),
	}
}

// Default returns 0 +/- 1.
func Default() ValueUncertainty {
	return New(0, 1)
}

// NewRandom draws a value uniformly from [minValue, maxValue) and an
// uncertainty uniformly from [minUncertainty, maxUncertainty).
func NewRandom(src rand.Source, minValue, maxValue, minUncertainty, maxUncertainty float64) ValueUncertainty {
	values := distuv.Uniform{Min: minValue, Max: maxValue, Src: src}
	uncertainties := distuv.Uniform{Min: minUncertainty, Max: maxUncertainty, Src: src}
	return New(values.Rand(), uncertainties.Rand())
}

func (v ValueUncertainty) Raw() float64 {
	return v.raw
}

func (v ValueUncertainty) RawUncertainty() float64 {
	return v.rawUncertainty
}

// Uncertainty is the raw uncertainty rounded to one significant figure.
func (v ValueUncertainty) Uncertainty() float64 {
	return utils.RoundSignificant(v.rawUncertainty, 1)
}

// Value is the raw value rounded to the order of the last digit of
// Uncertainty.
func (v ValueUncertainty) Value() float64 {
	order := utils.LeastSignificantOrder(v.Uncertainty())
	return utils.RoundToOrder(v.raw, order, nil)
}

func (v *ValueUncertainty) SetRaw(value float64) {
	v.raw = value
}

func (v *ValueUncertainty) SetRawUncertainty(uncertainty float64) {
	v.rawUncertainty = math.Abs(uncertainty)
}

func (v *ValueUncertainty) Update(value, uncertainty float64) {
	v.SetRaw(value)
	v.SetRawUncertainty(uncertainty)
}

// Freeze collapses the raw parts onto their rounded display forms.
func (v *ValueUncertainty) Freeze() *ValueUncertainty {
	value, uncertainty := v.Value(), v.Uncertainty()
	v.raw, v.rawUncertainty = value, uncertainty
	return v
}

func (v ValueUncertainty) Clone() ValueUncertainty {
	return New(v.raw, v.rawUncertainty)
}

func (v ValueUncertainty) Label() string {
	return fmt.Sprintf("%.15g +/- %s", v.Value(), formatUncertainty(v.Uncertainty()))
}

func (v ValueUncertainty) HTMLLabel() string {
	return fmt.Sprintf("%.15g &#177; %s", v.Value(), formatUncertainty(v.Uncertainty()))
}

func (v ValueUncertainty) RawLabel() string {
	return fmt.Sprintf("%.15g +/- %.15g", utils.RoundSignificant(v.raw, 6), v.Uncertainty())
}

func (v ValueUncertainty) String() string {
	return fmt.Sprintf("<ValueUncertainty %s>", v.Label())
}

func formatUncertainty(u float64) string {
	return strconv.FormatFloat(u, 'g', -1, 64)
}
