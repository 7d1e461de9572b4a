package kde

import (
	"context"
	"fmt"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/config"
	"github.com/uyouii/measurement-stats/model"
	"github.com/uyouii/measurement-stats/utils"
	"github.com/uyouii/measurement-stats/value"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

// CalculateSummary builds a gaussian distribution from the measurements and
// reports its extremes, median, MAD, quantiles and weighted tukey box. Nil
// settings use config.DefaultSettings.
func CalculateSummary(ctx context.Context, measurements []value.ValueUncertainty,
	settings *config.Settings) (summary *model.Summary, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("CalculateSummary recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Int("count", len(measurements)))
			summary, err = nil, fmt.Errorf("panic: %v: %w", r, common.ErrorInvalidValue)
		}
	}()

	if settings == nil {
		settings = config.DefaultSettings()
	}
	if err := settings.Validate(); err != nil {
		logger.Error("invalid settings", zap.Error(err))
		return nil, err
	}

	kernel := NewGaussianKernel()
	kernel.MaxSigma = settings.MaxSigma
	d, err := Create(Uncertain(measurements), nil, WithKernel(kernel))
	if err != nil {
		logger.Error("create distribution failed", zap.Error(err), zap.Int("count", len(measurements)))
		return nil, err
	}

	minValue, _ := d.MinimumValue()
	maxValue, _ := d.MaximumValue()
	res := &model.Summary{
		Count:           d.Len(),
		MinimumValue:    minValue,
		MaximumValue:    maxValue,
		MinimumBoundary: d.MinimumBoundary(settings.MaxSigma),
		MaximumBoundary: d.MaximumBoundary(settings.MaxSigma),
		QuantileValues:  map[string]*model.QuantileValue{},
	}

	src := rand.NewSource(settings.Seed)

	res.Median, res.MAD, err = WeightedMedianAverageDeviation(d, settings.PopulationCount, src)
	if err != nil {
		logger.Error("weighted median average deviation failed", zap.Error(err))
		return nil, err
	}

	for _, q := range settings.Quantiles {
		p, err := Percentile(d, q, settings.Tolerance)
		if err != nil {
			logger.Error("kde percentile failed", zap.Error(err), zap.Float64("quantile", q),
				zap.Float64("last", p.X))
			continue
		}
		res.QuantileValues[model.QuantileKey(q)] = &model.QuantileValue{
			Value:    p.X,
			Quantile: q,
		}
	}

	res.WeightedTukey = WeightedTukey(d, settings.PopulationCount, src)

	logger.Debug("summary calculated", zap.Int("count", res.Count),
		zap.Float64("median", res.Median), zap.Float64("mad", res.MAD))
	return res, nil
}
