package value

import (
	"fmt"
	"math"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/utils"
)

// Unzip splits values into plain numbers, rounded unless raw is set.
func Unzip(values []ValueUncertainty, raw bool) ([]float64, []float64) {
	vals := make([]float64, len(values))
	uncs := make([]float64, len(values))
	for i, v := range values {
		if raw {
			vals[i], uncs[i] = v.raw, v.rawUncertainty
		} else {
			vals[i], uncs[i] = v.Value(), v.Uncertainty()
		}
	}
	return vals, uncs
}

func Join(values, uncertainties []float64) ([]ValueUncertainty, error) {
	if len(values) != len(uncertainties) {
		return nil, fmt.Errorf("%d values and %d uncertainties: %w",
			len(values), len(uncertainties), common.ErrorInvalidValue)
	}
	res := make([]ValueUncertainty, len(values))
	for i := range values {
		res[i] = New(values[i], uncertainties[i])
	}
	return res, nil
}

// Deviations returns how many sigmas each value sits from expected. Against
// a ValueUncertainty both raw uncertainties combine in quadrature, against
// a Scalar only the value's rounded uncertainty is used.
func Deviations(expected Operand, values []ValueUncertainty) []float64 {
	res := make([]float64, len(values))
	switch e := resolve(expected).(type) {
	case ValueUncertainty:
		for i, v := range values {
			err := utils.SqrtSumOfSquares(v.rawUncertainty, e.rawUncertainty)
			res[i] = math.Abs(v.raw-e.raw) / err
		}
	case Scalar:
		for i, v := range values {
			res[i] = math.Abs(v.Value()-float64(e)) / v.Uncertainty()
		}
	default:
		panic(unsupported(expected))
	}
	return res
}

// Minimum returns the lowest displayed value, preferring the larger
// uncertainty on ties. ok is false for an empty slice.
func Minimum(values []ValueUncertainty) (ValueUncertainty, bool) {
	return extreme(values, func(a, b float64) bool { return a < b })
}

func Maximum(values []ValueUncertainty) (ValueUncertainty, bool) {
	return extreme(values, func(a, b float64) bool { return a > b })
}

func extreme(values []ValueUncertainty, better func(a, b float64) bool) (ValueUncertainty, bool) {
	if len(values) == 0 {
		return ValueUncertainty{}, false
	}
	item := values[0]
	for _, v := range values[1:] {
		value, itemValue := v.Value(), item.Value()
		if value == itemValue && v.Uncertainty() > item.Uncertainty() {
			item = v
		} else if better(value, itemValue) {
			item = v
		}
	}
	return item, true
}
