package model

import (
	"fmt"

	"github.com/uyouii/measurement-stats/value"
)

type Density struct {
	X     float64 `json:"x"`
	Value float64 `json:"v"`
}

type Cdf struct {
	X     float64 `json:"x"`
	Value float64 `json:"v"`
}

// Percentile is where the cumulative probability reached Target. Y is the
// probability at X.
type Percentile struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Target float64 `json:"target"`
}

type QuantileValue struct {
	Value    float64 `json:"v,omitempty"`
	Quantile float64 `json:"q,omitempty"`
}

// Box holds box-whisker boundaries, whiskers first and last.
type Box struct {
	Minimum       float64 `json:"minimum"`
	LowerQuartile float64 `json:"lower_quartile"`
	Median        float64 `json:"median"`
	UpperQuartile float64 `json:"upper_quartile"`
	Maximum       float64 `json:"maximum"`
}

func (b Box) InterQuartileRange() float64 {
	return b.UpperQuartile - b.LowerQuartile
}

type Summary struct {
	Count           int                       `json:"count"`
	MinimumValue    value.ValueUncertainty    `json:"minimum_value"`
	MaximumValue    value.ValueUncertainty    `json:"maximum_value"`
	MinimumBoundary float64                   `json:"minimum_boundary"`
	MaximumBoundary float64                   `json:"maximum_boundary"`
	Median          float64                   `json:"median"`
	MAD             float64                   `json:"mad"`
	QuantileValues  map[string]*QuantileValue `json:"quantiles,omitempty"`
	WeightedTukey   Box                       `json:"weighted_tukey"`
}

func QuantileKey(q float64) string {
	return fmt.Sprintf("%v", q)
}

func (s *Summary) GetQuantileValue(q float64) (*QuantileValue, bool) {
	if s == nil || s.QuantileValues == nil {
		return nil, false
	}
	quantile, ok := s.QuantileValues[QuantileKey(q)]
	return quantile, ok
}
