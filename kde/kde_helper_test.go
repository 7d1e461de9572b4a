package kde

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/config"
	"github.com/uyouii/measurement-stats/value"
)

func TestCalculateSummary(t *testing.T) {
	measurements, err := value.Join([]float64{-1, 0, 1, 2, 3}, []float64{0.5, 0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)

	summary, err := CalculateSummary(context.Background(), measurements, nil)
	require.NoError(t, err)

	assert.Equal(t, 5, summary.Count)
	assert.Equal(t, -1.0, summary.MinimumValue.Raw())
	assert.Equal(t, 3.0, summary.MaximumValue.Raw())
	assert.Equal(t, -6.0, summary.MinimumBoundary)
	assert.Equal(t, 8.0, summary.MaximumBoundary)
	assert.InDelta(t, 1.0, summary.Median, 1e-3)
	assert.Greater(t, summary.MAD, 0.0)

	median, ok := summary.GetQuantileValue(0.5)
	require.True(t, ok)
	assert.InDelta(t, 1.0, median.Value, 1e-3)
	assert.Len(t, summary.QuantileValues, len(config.DefaultSettings().Quantiles))

	box := summary.WeightedTukey
	assert.Less(t, box.LowerQuartile, box.Median)
	assert.Less(t, box.Median, box.UpperQuartile)

	again, err := CalculateSummary(context.Background(), measurements, nil)
	require.NoError(t, err)
	assert.Equal(t, summary, again)
}

func TestCalculateSummaryErrors(t *testing.T) {
	_, err := CalculateSummary(context.Background(), nil, nil)
	assert.ErrorIs(t, err, common.ErrorNoMeasurements)

	settings := config.DefaultSettings()
	settings.MaxSigma = 0
	_, err = CalculateSummary(context.Background(), []value.ValueUncertainty{value.Default()}, settings)
	assert.ErrorIs(t, err, common.ErrorInvalidConfig)
}
