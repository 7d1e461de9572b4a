package value

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Unweighted is the plain mean of the displayed values with the population
// standard deviation as its uncertainty.
func Unweighted(values ...ValueUncertainty) ValueUncertainty {
	if len(values) == 0 {
		return Default()
	}
	vals, _ := Unzip(values, false)
	mean, std := stat.PopMeanStdDev(vals, nil)
	return New(mean, std)
}

// Weighted is the inverse-variance weighted mean, see Taylor, An
// Introduction to Error Analysis, 7.2.
func Weighted(values ...ValueUncertainty) ValueUncertainty {
	if len(values) == 0 {
		return Default()
	}
	vals, weights := inverseVarianceWeights(values)
	return New(stat.Mean(vals, weights), 1/math.Sqrt(floats.Sum(weights)))
}

// WeightedMeanAndDeviation is the weighted mean with the weighted standard
// deviation of the values around it.
func WeightedMeanAndDeviation(values ...ValueUncertainty) ValueUncertainty {
	if len(values) == 0 {
		return Default()
	}
	if len(values) == 1 {
		return values[0].Clone()
	}

	vals, weights := inverseVarianceWeights(values)
	ave := stat.Mean(vals, weights)
	ws := floats.Sum(weights)

	dev := 0.0
	for i := range vals {
		dev += weights[i] * (vals[i] - ave) * (vals[i] - ave)
	}
	n := float64(len(vals))
	denom := ws * (n - 1) / n

	return New(ave, math.Sqrt(dev/denom))
}

func inverseVarianceWeights(values []ValueUncertainty) ([]float64, []float64) {
	vals, uncs := Unzip(values, false)
	weights := make([]float64, len(uncs))
	for i, u := range uncs {
		weights[i] = 1 / (u * u)
	}
	return vals, weights
}
