package kde

import (
	"fmt"
	"math"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/model"
	"github.com/uyouii/measurement-stats/utils"
)

// Percentile finds where the cumulative probability of d reaches target,
// within tolerance. The area is integrated with trapezoids over a
// PercentileRangePoints grid spanning the 10 sigma boundaries, then the
// overshooting step is refined by a secant search on the step fraction.
//
// When the refinement runs out of iterations the last estimate is returned
// along with common.ErrorNotConverged.
func Percentile(d *Distribution, target, tolerance float64) (model.Percentile, error) {
	if d == nil || d.Len() == 0 {
		return model.Percentile{}, common.ErrorNoMeasurements
	}
	if target < 0 || target > 1 || math.IsNaN(target) {
		return model.Percentile{}, fmt.Errorf("percentile target %v: %w", target, common.ErrorInvalidValue)
	}
	if tolerance <= 0 {
		tolerance = PercentileTolerance
	}

	xValues := UniformRange(d, DefaultMaxSigma, PercentileRangePoints, 0)

	area, overshoot := 0.0, false
	x, y, dx := xValues[0], d.ProbabilityAt(xValues[0]), 0.0
	for i := 0; i < len(xValues)-1; i++ {
		xn := xValues[i+1]
		yn := d.ProbabilityAt(xn)
		x, dx = xValues[i], xn-xValues[i]

		newArea := area + trapezoid(dx, y, yn)
		if utils.EquivalentWithin(newArea, target, tolerance) {
			return model.Percentile{X: xn, Y: yn, Target: newArea}, nil
		}
		if newArea > target {
			overshoot = true
			break
		}
		area, y = newArea, yn
	}
	if !overshoot {
		last := len(xValues) - 1
		return model.Percentile{X: xValues[last], Y: y, Target: area},
			fmt.Errorf("percentile %v beyond total area %v: %w", target, area, common.ErrorNotConverged)
	}

	ratio, ratioMin, ratioMax := 0.5, 0.0, 1.0
	var last model.Percentile
	for i := 0; i < MaxPercentileIteration; i++ {
		piece := ratio * dx
		xn := x + piece
		yn := d.ProbabilityAt(xn)
		extension := trapezoid(piece, y, yn)
		test := area + extension

		last = model.Percentile{X: xn, Y: yn, Target: test}
		if utils.EquivalentWithin(test, target, tolerance) {
			return last, nil
		}

		if test < target {
			ratioMin = math.Max(ratioMin, ratio)
		} else if test > target {
			ratioMax = math.Min(ratioMax, ratio)
		}

		if extension > 0 {
			ratio *= (target - area) / extension
		}
		if extension <= 0 || ratio <= ratioMin || ratio >= ratioMax {
			ratio = ratioMin + 0.5*(ratioMax-ratioMin)
		}
	}
	return last, fmt.Errorf("percentile %v within %v: %w", target, tolerance, common.ErrorNotConverged)
}

// Median is the 0.5 percentile at the default tolerance.
func Median(d *Distribution) (float64, error) {
	p, err := Percentile(d, 0.5, PercentileTolerance)
	return p.X, err
}

// trapezoid is the area of one trapezoid of width dx between heights y and
// yn.
func trapezoid(dx, y, yn float64) float64 {
	return dx * (math.Min(y, yn) + 0.5*math.Abs(yn-y))
}
