package kde

import (
	"math"

	"github.com/uyouii/measurement-stats/value"
	"gonum.org/v1/gonum/integrate/quad"
)

// Overlap compares two distributions, 1 when they are identical and 0 when
// they share no probability. Both are sampled on the union of their 10 sigma
// adaptive ranges and the absolute trapezoid area differences summed.
//
// Results slightly outside [0, 1] are integration error and are not
// clamped.
func Overlap(dist, comparison *Distribution) float64 {
	if dist.Len() == 0 || comparison.Len() == 0 {
		return 0
	}

	xValues := mergeRanges(
		AdaptiveRange(dist, DefaultMaxSigma, 0),
		AdaptiveRange(comparison, DefaultMaxSigma, 0),
	)

	out := 0.0
	myValue := dist.ProbabilityAt(xValues[0])
	compareValue := comparison.ProbabilityAt(xValues[0])
	for i := 0; i < len(xValues)-1; i++ {
		dx := xValues[i+1] - xValues[i]
		myNext := dist.ProbabilityAt(xValues[i+1])
		compareNext := comparison.ProbabilityAt(xValues[i+1])

		out += math.Abs(trapezoid(dx, myValue, myNext) - trapezoid(dx, compareValue, compareNext))
		myValue, compareValue = myNext, compareNext
	}
	return 1.0 - 0.5*out
}

type quadInterval struct {
	min, max float64
	integral float64
	err      float64
}

// Overlap2 integrates |P_dist - P_comparison| with adaptive gauss-legendre
// quadrature between the 10 sigma edges of the lowest and highest
// measurements. The result's uncertainty is the quadrature error estimate.
func Overlap2(dist, comparison *Distribution) value.ValueUncertainty {
	all := append(dist.Measurements(), comparison.Measurements()...)
	minValue, ok := value.Minimum(all)
	if !ok {
		return value.New(0, 0)
	}
	maxValue, _ := value.Maximum(all)

	lower := minValue.Value() - DefaultMaxSigma*minValue.Uncertainty()
	upper := maxValue.Value() + DefaultMaxSigma*maxValue.Uncertainty()

	f := func(x float64) float64 {
		return math.Abs(dist.ProbabilityAt(x) - comparison.ProbabilityAt(x))
	}

	// kernel centers and edges split the integral so narrow peaks are seen
	breaks := []float64{lower, upper}
	for _, m := range all {
		for _, x := range []float64{
			m.Value() - DefaultMaxSigma*m.Uncertainty(),
			m.Value(),
			m.Value() + DefaultMaxSigma*m.Uncertainty(),
		} {
			if x > lower && x < upper {
				breaks = append(breaks, x)
			}
		}
	}
	breaks = mergeRanges(breaks)

	intervals := make([]quadInterval, 0, len(breaks)-1+Overlap2Limit)
	for i := 0; i < len(breaks)-1; i++ {
		intervals = append(intervals, integrateInterval(f, breaks[i], breaks[i+1]))
	}

	total, totalErr := sumIntervals(intervals)
	for i := 0; i < Overlap2Limit; i++ {
		if totalErr <= math.Max(Overlap2Tolerance, Overlap2Tolerance*math.Abs(total)) {
			break
		}

		worst := 0
		for j := range intervals {
			if intervals[j].err > intervals[worst].err {
				worst = j
			}
		}
		w := intervals[worst]
		mid := w.min + 0.5*(w.max-w.min)
		if !(mid > w.min && mid < w.max) {
			break
		}
		intervals[worst] = integrateInterval(f, w.min, mid)
		intervals = append(intervals, integrateInterval(f, mid, w.max))
		total, totalErr = sumIntervals(intervals)
	}

	return value.New(1.0-0.5*total, totalErr)
}

// integrateInterval compares an n and a 2n+1 node rule, the difference is
// the error estimate.
func integrateInterval(f func(float64) float64, min, max float64) quadInterval {
	coarse := quad.Fixed(f, min, max, Overlap2Nodes, nil, 0)
	fine := quad.Fixed(f, min, max, 2*Overlap2Nodes+1, nil, 0)
	return quadInterval{
		min:      min,
		max:      max,
		integral: fine,
		err:      math.Abs(fine - coarse),
	}
}

func sumIntervals(intervals []quadInterval) (float64, float64) {
	var total, err float64
	for _, in := range intervals {
		total += in.integral
		err += in.err
	}
	return total, err
}
