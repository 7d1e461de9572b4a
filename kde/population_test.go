package kde

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/measurement-stats/utils"
	"github.com/uyouii/measurement-stats/value"
	"golang.org/x/exp/rand"
)

func TestPopulation(t *testing.T) {
	d := NewDistribution([]value.ValueUncertainty{value.New(5, 1)}, nil)

	pop := Population(d, 2048, rand.NewSource(5))
	assert.InDelta(t, 2048, len(pop), 0.05*2048)
	assert.InDelta(t, 5.0, utils.Median(pop), 0.1)
	for _, x := range pop {
		assert.GreaterOrEqual(t, x, d.MinimumBoundary(DefaultMaxSigma)-1)
		assert.LessOrEqual(t, x, d.MaximumBoundary(DefaultMaxSigma)+1)
	}

	again := Population(d, 2048, rand.NewSource(5))
	assert.Equal(t, pop, again)
}

func TestPopulationDefaults(t *testing.T) {
	assert.Nil(t, Population(NewDistribution(nil, nil), 100, nil))

	d := NewDistribution([]value.ValueUncertainty{value.Default()}, nil)
	pop := Population(d, 0, nil)
	assert.InDelta(t, DefaultPopulationCount, len(pop), 0.05*DefaultPopulationCount)
}

func TestPopulationPercentile(t *testing.T) {
	pop := []float64{4, 1, 3, 2}
	assert.Equal(t, 2.5, PopulationPercentile(pop, 0.5))
	assert.Equal(t, 1.0, PopulationPercentile(pop, 0))
	assert.Equal(t, 4.0, PopulationPercentile(pop, 1))
	assert.Equal(t, []float64{4, 1, 3, 2}, pop)
	assert.True(t, math.IsNaN(PopulationPercentile(nil, 0.5)))
}

func TestMedianAverageDeviation(t *testing.T) {
	assert.Equal(t, 1.0, MedianAverageDeviation([]float64{1, 1, 2, 2, 4, 6, 9}))
}

func TestWeightedMedianAverageDeviation(t *testing.T) {
	delta := 1.8

	var measurements []value.ValueUncertainty
	for i := 0; i < 10; i++ {
		measurements = append(measurements, value.New(delta, 1.1), value.New(-delta, 1.1))
	}
	d := NewDistribution(measurements, nil)

	median, mad, err := WeightedMedianAverageDeviation(d, DefaultWeightedCount, rand.NewSource(9))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, median, 0.1)
	assert.InDelta(t, delta, mad, 0.5)
}
