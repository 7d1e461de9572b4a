package kde

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/value"
	"gonum.org/v1/gonum/stat"
)

func areaUnderCurve(xs, ys []float64) float64 {
	area := 0.0
	for i := 0; i < len(xs)-1; i++ {
		area += trapezoid(xs[i+1]-xs[i], ys[i], ys[i+1])
	}
	return area
}

func TestCreateEmpty(t *testing.T) {
	d, err := Create(Numbers{}, nil)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, common.ErrorNoMeasurements)

	d, err = Create(Uncertain(nil), SharedUncertainty(1))
	assert.Nil(t, d)
	assert.ErrorIs(t, err, common.ErrorNoMeasurements)
}

func TestCreateMismatchedUncertainties(t *testing.T) {
	_, err := Create(Numbers{1, 2, 3}, Uncertainties{0.1, 0.2})
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestCreateFromValues(t *testing.T) {
	values := []float64{11, 15, 3, 7, 2}
	d, err := CreateFromValues(values)
	require.NoError(t, err)
	require.Equal(t, 5, d.Len())

	// half the median spacing of 2, 3, 7, 11, 15
	for _, m := range d.Measurements() {
		assert.Equal(t, 2.0, m.RawUncertainty())
	}

	minimum, ok := d.MinimumValue()
	require.True(t, ok)
	assert.Equal(t, 2.0, minimum.Value())

	maximum, ok := d.MaximumValue()
	require.True(t, ok)
	assert.Equal(t, 15.0, maximum.Value())
}

func TestCreateUncertaintyInputs(t *testing.T) {
	shared, err := Create(Numbers{1, 2}, SharedUncertainty(0.5))
	require.NoError(t, err)
	for _, m := range shared.Measurements() {
		assert.Equal(t, 0.5, m.RawUncertainty())
	}

	paired, err := Create(Numbers{1, 2}, Uncertainties{0.1, -0.3})
	require.NoError(t, err)
	ms := paired.Measurements()
	assert.Equal(t, 0.1, ms[0].RawUncertainty())
	assert.Equal(t, 0.3, ms[1].RawUncertainty())

	// uncertain input keeps its own uncertainties
	uncertain, err := Create(Uncertain{value.New(4, 0.2)}, SharedUncertainty(9))
	require.NoError(t, err)
	assert.Equal(t, 0.2, uncertain.Measurements()[0].RawUncertainty())
}

func TestCreateWithEstimator(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	estimator := NewNormalReferenceEstimator(nil)

	d, err := Create(Numbers(values), nil, WithUncertaintyEstimator(estimator))
	require.NoError(t, err)

	expected := estimator.Estimate(values)
	assert.Greater(t, expected, 0.0)
	assert.Less(t, expected, stat.StdDev(values, nil))
	for _, m := range d.Measurements() {
		assert.Equal(t, expected, m.RawUncertainty())
	}
}

func TestSingleDensityNormalized(t *testing.T) {
	d := NewDistribution([]value.ValueUncertainty{value.Default()}, nil)

	// step of 0.1 sigma
	xs := UniformRange(d, DefaultMaxSigma, 0, 0.1)
	area := areaUnderCurve(xs, d.ProbabilitiesAt(xs))
	assert.InDelta(t, 1.0, area, 1e-3)
}

func TestManyDensitiesNormalized(t *testing.T) {
	tests := []struct {
		name         string
		measurements []value.ValueUncertainty
	}{
		{"double overlap", []value.ValueUncertainty{value.Default(), value.Default()}},
		{"offset", []value.ValueUncertainty{value.Default(), value.New(2, 2)}},
		{"mixed widths", []value.ValueUncertainty{value.New(0, 1), value.New(2, 2), value.New(-5, 0.5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDistribution(tt.measurements, nil)
			xs := UniformRange(d, DefaultMaxSigma, 4000, 0)
			area := areaUnderCurve(xs, d.ProbabilitiesAt(xs))
			assert.InDelta(t, 1.0, area, 1e-3)
		})
	}
}

func TestDensityAndProbability(t *testing.T) {
	d := NewDistribution([]value.ValueUncertainty{value.New(0, 1), value.New(1, 1), value.New(2, 1)}, nil)
	for _, x := range []float64{-1, 0, 0.5, 3} {
		assert.InDelta(t, d.DensityAt(x)/3, d.ProbabilityAt(x), 1e-15)
	}
	assert.Len(t, d.DensitiesAt([]float64{0, 1}), 2)
}

func TestHeightedDensity(t *testing.T) {
	d := NewDistribution([]value.ValueUncertainty{value.New(0, 1), value.New(5, 1)}, nil)
	k := d.Kernel()

	unweighted, err := d.HeightedDensityAt(0.5, nil)
	require.NoError(t, err)
	assert.InDelta(t, d.DensityAt(0.5), unweighted, 1e-15)

	heighted, err := d.HeightedDensityAt(0.5, []float64{2, 0})
	require.NoError(t, err)
	assert.InDelta(t, 2*k.Single(0.5, value.New(0, 1), DefaultMaxSigma), heighted, 1e-15)

	probability, err := d.HeightedProbabilityAt(0.5, []float64{2, 0})
	require.NoError(t, err)
	assert.InDelta(t, heighted/2, probability, 1e-15)

	probabilities, err := d.HeightedProbabilitiesAt([]float64{0.5, 5}, []float64{2, 0})
	require.NoError(t, err)
	assert.InDelta(t, probability, probabilities[0], 1e-15)

	densities, err := d.HeightedDensitiesAt([]float64{0.5}, nil)
	require.NoError(t, err)
	assert.InDelta(t, unweighted, densities[0], 1e-15)

	_, err = d.HeightedDensityAt(0.5, []float64{1})
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestBoundaries(t *testing.T) {
	d := NewDistribution([]value.ValueUncertainty{value.New(12, 2), value.New(20, 4)}, nil)
	assert.Equal(t, -20.0, d.MinimumBoundary(10))
	assert.Equal(t, 60.0, d.MaximumBoundary(10))
}

func TestEmptyDistribution(t *testing.T) {
	d := NewDistribution(nil, nil)
	assert.Equal(t, 0.0, d.MinimumBoundary(10))
	assert.Equal(t, 0.0, d.MaximumBoundary(10))
	assert.Equal(t, 0.0, d.ProbabilityAt(1))

	_, ok := d.MinimumValue()
	assert.False(t, ok)
	_, ok = d.MaximumValue()
	assert.False(t, ok)
}

func TestNakedMeasurementValues(t *testing.T) {
	d := NewDistribution([]value.ValueUncertainty{value.New(math.Pi, 0.01)}, nil)
	assert.InDeltaSlice(t, []float64{3.14}, d.NakedMeasurementValues(false), 1e-12)
	assert.Equal(t, []float64{math.Pi}, d.NakedMeasurementValues(true))
}

func TestMeasurementsAreCopied(t *testing.T) {
	ms := []value.ValueUncertainty{value.New(1, 0.1)}
	d := NewDistribution(ms, nil)
	ms[0] = value.New(100, 1)

	got := d.Measurements()
	assert.Equal(t, 1.0, got[0].Raw())
	got[0] = value.New(50, 1)
	assert.Equal(t, 1.0, d.Measurements()[0].Raw())
}

func TestCdf(t *testing.T) {
	d := NewDistribution([]value.ValueUncertainty{value.Default()}, nil)
	grid := UniformRange(d, DefaultMaxSigma, 201, 0)

	cdf := d.Cdf(grid)
	require.Len(t, cdf, len(grid))
	assert.Equal(t, 0.0, cdf[0].Value)
	assert.InDelta(t, 0.5, cdf[100].Value, 1e-6)
	assert.InDelta(t, 1.0, cdf[len(cdf)-1].Value, 1e-6)

	densities := d.Densities(grid)
	assert.InDelta(t, d.ProbabilityAt(0), densities[100].Value, 1e-12)

	assert.Empty(t, d.Cdf(nil))
}
