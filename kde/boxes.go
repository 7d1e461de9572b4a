package kde

import (
	"fmt"
	"sort"

	"github.com/uyouii/measurement-stats/model"
	"golang.org/x/exp/rand"
)

// UnweightedTukey computes box boundaries over plain values. The whiskers
// are the outermost values within 1.5 IQR of the median.
func UnweightedTukey(values []float64) model.Box {
	if len(values) == 0 {
		return model.Box{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	box := model.Box{
		LowerQuartile: PopulationPercentile(sorted, 0.25),
		Median:        PopulationPercentile(sorted, 0.5),
		UpperQuartile: PopulationPercentile(sorted, 0.75),
	}
	tukeyRange := 1.5 * box.InterQuartileRange()

	for _, v := range sorted {
		if v >= box.Median-tukeyRange {
			box.Minimum = v
			break
		}
	}
	for i := len(sorted) - 1; i >= 0; i-- {
		if sorted[i] <= box.Median+tukeyRange {
			box.Maximum = sorted[i]
			break
		}
	}
	return box
}

// WeightedTukey is UnweightedTukey over a population of d, so measurement
// uncertainties are taken into account.
func WeightedTukey(d *Distribution, count int, src rand.Source) model.Box {
	return UnweightedTukey(weightedPopulation(d, count, src))
}

// UnweightedNine has whiskers at the 9th and 91st percentiles.
func UnweightedNine(values []float64) model.Box {
	return percentileBox(values, 0.09, 0.91)
}

func WeightedNine(d *Distribution, count int, src rand.Source) model.Box {
	return UnweightedNine(weightedPopulation(d, count, src))
}

// UnweightedTwo has whiskers at the 2nd and 98th percentiles.
func UnweightedTwo(values []float64) model.Box {
	return percentileBox(values, 0.02, 0.98)
}

func WeightedTwo(d *Distribution, count int, src rand.Source) model.Box {
	return UnweightedTwo(weightedPopulation(d, count, src))
}

// UnweightedBoundaries uses the displayed measurement values of d, ignoring
// their uncertainties. Whiskers sit one IQR outside the quartiles.
func UnweightedBoundaries(d *Distribution) model.Box {
	values := d.NakedMeasurementValues(false)
	if len(values) == 0 {
		return model.Box{}
	}
	return iqrBox(
		PopulationPercentile(values, 0.25),
		PopulationPercentile(values, 0.5),
		PopulationPercentile(values, 0.75),
	)
}

// WeightedBoundaries finds the quartiles of d by integration.
func WeightedBoundaries(d *Distribution, tolerance float64) (model.Box, error) {
	var quartiles [3]float64
	for i, target := range []float64{0.25, 0.5, 0.75} {
		p, err := Percentile(d, target, tolerance)
		if err != nil {
			return model.Box{}, fmt.Errorf("quartile %v: %w", target, err)
		}
		quartiles[i] = p.X
	}
	return iqrBox(quartiles[0], quartiles[1], quartiles[2]), nil
}

func iqrBox(lower, median, upper float64) model.Box {
	iqr := upper - lower
	return model.Box{
		Minimum:       lower - iqr,
		LowerQuartile: lower,
		Median:        median,
		UpperQuartile: upper,
		Maximum:       upper + iqr,
	}
}

func percentileBox(values []float64, low, high float64) model.Box {
	if len(values) == 0 {
		return model.Box{}
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return model.Box{
		Minimum:       PopulationPercentile(sorted, low),
		LowerQuartile: PopulationPercentile(sorted, 0.25),
		Median:        PopulationPercentile(sorted, 0.5),
		UpperQuartile: PopulationPercentile(sorted, 0.75),
		Maximum:       PopulationPercentile(sorted, high),
	}
}

func weightedPopulation(d *Distribution, count int, src rand.Source) []float64 {
	if count <= 0 {
		count = DefaultWeightedCount
	}
	return Population(d, count, src)
}
