package value

import (
	"fmt"
	"math"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/utils"
)

// Operand is either a ValueUncertainty or a bare Scalar.
type Operand interface {
	operand()
}

// Scalar is an exact number with no uncertainty.
type Scalar float64

func (ValueUncertainty) operand() {}
func (Scalar) operand()           {}

const (
	divisionZeroTolerance = 1e-6
	powerZeroTolerance    = 1e-5
)

func (v ValueUncertainty) Add(other Operand) ValueUncertainty {
	switch o := resolve(other).(type) {
	case ValueUncertainty:
		return New(v.raw+o.raw, utils.SqrtSumOfSquares(v.rawUncertainty, o.rawUncertainty))
	case Scalar:
		return New(v.raw+float64(o), v.rawUncertainty)
	}
	panic(unsupported(other))
}

func (v ValueUncertainty) Sub(other Operand) ValueUncertainty {
	switch o := resolve(other).(type) {
	case ValueUncertainty:
		return New(v.raw-o.raw, utils.SqrtSumOfSquares(v.rawUncertainty, o.rawUncertainty))
	case Scalar:
		return New(v.raw-float64(o), v.rawUncertainty)
	}
	panic(unsupported(other))
}

// Mul propagates relative uncertainties in quadrature. A zero operand makes
// the relative form undefined, the product is then 0 with the absolute
// uncertainties summed in quadrature.
func (v ValueUncertainty) Mul(other Operand) ValueUncertainty {
	switch o := resolve(other).(type) {
	case ValueUncertainty:
		if v.raw == 0 || o.raw == 0 {
			return New(0, utils.SqrtSumOfSquares(v.rawUncertainty, o.rawUncertainty))
		}
		val := v.raw * o.raw
		return New(val, math.Abs(val)*utils.SqrtSumOfSquares(v.rawUncertainty/v.raw, o.rawUncertainty/o.raw))
	case Scalar:
		k := float64(o)
		return New(k*v.raw, math.Abs(k*v.rawUncertainty))
	}
	panic(unsupported(other))
}

// Div fails with common.ErrorDivisionByZero only when the denominator is zero
// and the numerator is not within 1e-6 of zero.
func (v ValueUncertainty) Div(other Operand) (ValueUncertainty, error) {
	switch o := resolve(other).(type) {
	case ValueUncertainty:
		if v.raw == 0 || o.raw == 0 {
			if utils.EquivalentWithin(v.raw, 0, divisionZeroTolerance) {
				return New(0, utils.SqrtSumOfSquares(v.rawUncertainty, o.rawUncertainty)), nil
			}
			return ValueUncertainty{}, fmt.Errorf("%s / %s: %w", v, o, common.ErrorDivisionByZero)
		}
		val := v.raw / o.raw
		return New(val, math.Abs(val)*utils.SqrtSumOfSquares(v.rawUncertainty/v.raw, o.rawUncertainty/o.raw)), nil
	case Scalar:
		k := float64(o)
		if k == 0 {
			return ValueUncertainty{}, fmt.Errorf("%s / 0: %w", v, common.ErrorDivisionByZero)
		}
		return New(v.raw/k, math.Abs(v.rawUncertainty/k)), nil
	}
	panic(unsupported(other))
}

// Pow raises v to power. Values within 1e-5 of zero are returned unchanged.
// Fractional powers of negative values yield NaN.
func (v ValueUncertainty) Pow(power float64) ValueUncertainty {
	if utils.EquivalentWithin(v.raw, 0, powerZeroTolerance) {
		return v.Clone()
	}
	val := math.Pow(v.raw, power)
	return New(val, math.Abs(val*power*v.rawUncertainty/v.raw))
}

func (v ValueUncertainty) Sqrt() ValueUncertainty {
	return v.Pow(0.5)
}

// Less compares the rounded display values.
func (v ValueUncertainty) Less(other Operand) bool {
	return v.Value() < displayValue(other)
}

func (v ValueUncertainty) Greater(other Operand) bool {
	return v.Value() > displayValue(other)
}

// Add returns a + b for any pairing of values and scalars.
func Add(a, b Operand) ValueUncertainty {
	if k, ok := resolve(a).(Scalar); ok {
		return toValue(b).Add(k)
	}
	return toValue(a).Add(b)
}

// Sub returns a - b. Scalar minus value keeps the value's uncertainty.
func Sub(a, b Operand) ValueUncertainty {
	if k, ok := resolve(a).(Scalar); ok {
		if o, ok := resolve(b).(ValueUncertainty); ok {
			return New(float64(k)-o.raw, o.rawUncertainty)
		}
	}
	return toValue(a).Sub(b)
}

func Mul(a, b Operand) ValueUncertainty {
	if k, ok := resolve(a).(Scalar); ok {
		return toValue(b).Mul(k)
	}
	return toValue(a).Mul(b)
}

// Div returns a / b. Scalar over value propagates the value's relative
// uncertainty onto the quotient.
func Div(a, b Operand) (ValueUncertainty, error) {
	if k, ok := resolve(a).(Scalar); ok {
		if o, ok := resolve(b).(ValueUncertainty); ok {
			if o.raw == 0 {
				if utils.EquivalentWithin(float64(k), 0, divisionZeroTolerance) {
					return New(0, o.rawUncertainty), nil
				}
				return ValueUncertainty{}, fmt.Errorf("%v / %s: %w", float64(k), o, common.ErrorDivisionByZero)
			}
			val := float64(k) / o.raw
			return New(val, math.Abs(val*o.rawUncertainty/o.raw)), nil
		}
	}
	return toValue(a).Div(b)
}

func Pow(a ValueUncertainty, power float64) ValueUncertainty {
	return a.Pow(power)
}

func resolve(o Operand) Operand {
	switch v := o.(type) {
	case *ValueUncertainty:
		if v != nil {
			return *v
		}
	case *Scalar:
		if v != nil {
			return *v
		}
	}
	return o
}

func toValue(o Operand) ValueUncertainty {
	switch v := resolve(o).(type) {
	case ValueUncertainty:
		return v
	case Scalar:
		return New(float64(v), 0)
	}
	panic(unsupported(o))
}

func displayValue(o Operand) float64 {
	switch v := resolve(o).(type) {
	case ValueUncertainty:
		return v.Value()
	case Scalar:
		return float64(v)
	}
	panic(unsupported(o))
}

func unsupported(o Operand) string {
	return fmt.Sprintf("value: unsupported operand %T", o)
}
