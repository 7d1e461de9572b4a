package kde

import (
	"fmt"
	"math"
	"sort"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/utils"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Population draws plain numbers that approximate the density of d. The 10
// sigma span is cut into PopulationBins bins and each bin center x gets
// round(count * binWidth * P(x)) uniform samples inside its bin. A nil src
// draws from the global source. An empty distribution has no population.
func Population(d *Distribution, count int, src rand.Source) []float64 {
	if d == nil || d.Len() == 0 {
		return nil
	}
	if count <= 0 {
		count = DefaultPopulationCount
	}

	xMin := d.MinimumBoundary(DefaultMaxSigma)
	xMax := d.MaximumBoundary(DefaultMaxSigma)
	delta := (xMax - xMin) / PopulationBins

	out := make([]float64, 0, count)
	if !(delta > 0) {
		return out
	}
	for i := 0; i <= PopulationBins; i++ {
		x := xMin + float64(i)*delta
		if i == PopulationBins {
			x = xMax
		}
		n := int(math.RoundToEven(float64(count) * delta * d.ProbabilityAt(x)))
		if n <= 0 {
			continue
		}
		bin := distuv.Uniform{Min: x - 0.5*delta, Max: x + 0.5*delta, Src: src}
		for j := 0; j < n; j++ {
			out = append(out, bin.Rand())
		}
	}
	return out
}

// PopulationPercentile is the target quantile of a population, linearly
// interpolated between the closest ranks. An empty population gives NaN.
func PopulationPercentile(population []float64, target float64) float64 {
	if len(population) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), population...)
	sort.Float64s(sorted)
	return utils.Percentile(sorted, math.Min(math.Max(target, 0), 1))
}

// MedianAverageDeviation is the median absolute deviation of a population
// from its own median.
func MedianAverageDeviation(population []float64) float64 {
	median := utils.Median(population)
	return medianDeviation(population, median)
}

// WeightedMedianAverageDeviation returns the median of d found by
// integration and the median absolute deviation of a population of d from
// it.
func WeightedMedianAverageDeviation(d *Distribution, count int, src rand.Source) (median float64, mad float64, err error) {
	median, err = Median(d)
	if err != nil {
		return median, 0, fmt.Errorf("weighted median: %w", err)
	}
	pop := Population(d, count, src)
	if len(pop) == 0 {
		return median, 0, fmt.Errorf("empty population: %w", common.ErrorInvalidValue)
	}
	return median, medianDeviation(pop, median), nil
}

func medianDeviation(population []float64, median float64) float64 {
	deviations := make([]float64, len(population))
	for i, x := range population {
		deviations[i] = math.Abs(median - x)
	}
	return utils.Median(deviations)
}
