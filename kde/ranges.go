package kde

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// UniformRange spaces points evenly between the maxSigma boundaries of d.
// numPoints wins over delta, with neither set DefaultRangePoints are used.
func UniformRange(d *Distribution, maxSigma float64, numPoints int, delta float64) []float64 {
	minVal := d.MinimumBoundary(maxSigma)
	maxVal := d.MaximumBoundary(maxSigma)

	if numPoints == 0 {
		if delta > 0 {
			numPoints = int(math.RoundToEven((maxVal - minVal) / delta))
		} else {
			numPoints = DefaultRangePoints
		}
	}

	switch {
	case numPoints <= 0:
		return []float64{}
	case numPoints == 1:
		return []float64{minVal}
	}
	return floats.Span(make([]float64, numPoints), minVal, maxVal)
}

type kernelWindow struct {
	lower float64
	upper float64
	width float64
}

// AdaptiveRange samples between the maxSigma boundaries of d with steps of
// at most maxDelta, refined to a quarter uncertainty inside each kernel's
// +/- AdaptiveWindowSigma window. A step that would jump over a whole window
// stops at its lower edge. maxDelta <= 0 uses AdaptiveDeltaFraction of the
// span. The last point is always the maximum boundary.
func AdaptiveRange(d *Distribution, maxSigma float64, maxDelta float64) []float64 {
	minVal := d.MinimumBoundary(maxSigma)
	maxVal := d.MaximumBoundary(maxSigma)

	if maxDelta <= 0 {
		maxDelta = AdaptiveDeltaFraction * math.Abs(maxVal-minVal)
	}
	out := []float64{minVal}
	if maxDelta <= 0 || !(minVal < maxVal) {
		return out
	}

	windows := make([]kernelWindow, d.Len())
	for i := range d.values {
		width := math.Max(d.uncertainties[i], MinKernelWidth)
		windows[i] = kernelWindow{
			lower: d.values[i] - AdaptiveWindowSigma*width,
			upper: d.values[i] + AdaptiveWindowSigma*width,
			width: width,
		}
	}
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].lower < windows[j].lower
	})

	// windows before first are behind the scan for good
	first := 0
	for x := minVal; x < maxVal; {
		remaining := maxVal - x
		delta := math.Min(maxDelta, remaining)

		for i := first; i < len(windows); i++ {
			w := windows[i]
			xNext := x + delta

			if xNext <= w.lower {
				break
			}
			if w.upper <= x {
				if i == first {
					first++
				}
				continue
			}

			if w.lower <= x && x <= w.upper {
				delta = math.Min(delta, AdaptiveStepFraction*w.width)
			} else if x <= w.lower && w.upper <= xNext {
				delta = math.Min(delta, w.lower-x)
			}
		}

		xNext := x + delta
		if delta >= remaining {
			xNext = maxVal
		} else if xNext <= x {
			xNext = math.Nextafter(x, maxVal)
		}
		out = append(out, xNext)
		x = xNext
	}
	return out
}

// mergeRanges returns the sorted union of the ranges without duplicates.
func mergeRanges(ranges ...[]float64) []float64 {
	var res []float64
	for _, r := range ranges {
		res = append(res, r...)
	}
	sort.Float64s(res)

	n := 0
	for i, x := range res {
		if i > 0 && x == res[n-1] {
			continue
		}
		res[n] = x
		n++
	}
	return res[:n]
}
