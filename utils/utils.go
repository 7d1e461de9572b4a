package utils

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// MaxOrderSearch bounds the digit search in LeastSignificantOrder.
const MaxOrderSearch = 10000

const DefaultEpsilonFactor = 100.0

// RoundFunc rounds a float to an integral value.
type RoundFunc func(float64) float64

// OrderOfMagnitude returns the order of the most significant digit of v,
// so values in [1, 10) are order 0 and values in [0.1, 1) are order -1.
func OrderOfMagnitude(v float64) int {
	x := math.Abs(v)
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return int(math.Floor(math.Log10(x)))
}

// RoundSignificant rounds v to the given number of significant digits,
// halves go to even.
func RoundSignificant(v float64, digits int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	d := int(math.Ceil(math.Log10(math.Abs(v))))
	magnitude := math.Pow10(digits - d)
	return math.RoundToEven(v*magnitude) / magnitude
}

// LeastSignificantOrder finds the decimal order of the last significant
// digit of v. Zero is returned when no order is found within MaxOrderSearch
// steps, callers treat that as the ones digit.
func LeastSignificantOrder(v float64) int {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	if math.Trunc(v) == v {
		for om := 1; om < MaxOrderSearch; om++ {
			test := v * math.Pow10(-om)
			if math.Trunc(test) != test {
				return om - 1
			}
		}
		return 0
	}

	for om := -1; om > -MaxOrderSearch; om-- {
		test := v * math.Pow10(-om)
		if math.IsInf(test, 0) {
			return 0
		}
		if Equivalent(test, math.Round(test)) {
			return om
		}
	}
	return 0
}

// Equivalent compares a and b within DefaultEpsilonFactor machine epsilons.
func Equivalent(a, b float64) bool {
	return EquivalentWithin(a, b, DefaultEpsilonFactor*machineEpsilon)
}

func EquivalentWithin(a, b, epsilon float64) bool {
	return math.Abs(a-b) < epsilon
}

// RoundToOrder rounds v to the power of ten given by order. A nil roundOp
// rounds half to even. Order zero always rounds half to even.
func RoundToOrder(v float64, order int, roundOp RoundFunc) float64 {
	if roundOp == nil {
		roundOp = math.RoundToEven
	}
	if order == 0 {
		return math.RoundToEven(v)
	}
	scale := math.Pow10(order)
	return scale * roundOp(v/scale)
}

func SqrtSumOfSquares(values ...float64) float64 {
	return floats.Norm(values, 2)
}

// LinearSpace returns length evenly spaced values from min to max, both
// ends included. Fewer than two points are widened to two.
func LinearSpace(min, max float64, length int) []float64 {
	if length < 2 {
		length = 2
	}
	return floats.Span(make([]float64, length), min, max)
}

// Median averages the two middle elements for even lengths. The input is
// not modified.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}

// Percentile interpolates linearly between the closest ranks of sorted, the
// rank of p being p*(n-1). sorted must be in increasing order and p within
// [0, 1].
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	h := p * float64(n-1)
	lower := int(math.Floor(h))
	if lower >= n-1 {
		return sorted[n-1]
	}
	if lower < 0 {
		return sorted[0]
	}
	return sorted[lower] + (h-float64(lower))*(sorted[lower+1]-sorted[lower])
}

const machineEpsilon = 2.220446049250313e-16
