package utils

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func TestOrderOfMagnitude(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	for order := -9; order < 10; order++ {
		for i := 0; i < 25; i++ {
			v := (1.0 + 8.9*rnd.Float64()) * math.Pow10(order)
			assert.Equal(t, order, OrderOfMagnitude(v), "value %v", v)
			assert.Equal(t, order, OrderOfMagnitude(-v), "value %v", -v)
		}
	}
	assert.Equal(t, -1, OrderOfMagnitude(0.1))
	assert.Equal(t, 0, OrderOfMagnitude(1.0))
	assert.Equal(t, 0, OrderOfMagnitude(0))
}

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		value    float64
		digits   int
		expected float64
	}{
		{0.0456, 1, 0.05},
		{42, 1, 40},
		{-42, 1, -40},
		{0.000975, 1, 0.001},
		{1.1, 1, 1},
		{123456, 3, 123000},
		{0, 1, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.expected, RoundSignificant(tt.value, tt.digits), 1e-12, "value %v", tt.value)
	}
}

func TestLeastSignificantOrder(t *testing.T) {
	tests := []struct {
		value    float64
		expected int
	}{
		{40, 1},
		{500, 2},
		{7, 0},
		{0.005, -3},
		{0.3, -1},
		{0.7, -1},
		{0.04, -2},
		{1.25, -2},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, LeastSignificantOrder(tt.value), "value %v", tt.value)
	}
}

func TestEquivalent(t *testing.T) {
	assert.True(t, EquivalentWithin(1.0, 1.001, 0.01))
	assert.False(t, EquivalentWithin(1.0, 1.011, 0.01))
	assert.True(t, Equivalent(0.1+0.2, 0.3))
	assert.False(t, Equivalent(1.0, 1.0+1e-10))
}

func TestRoundToOrder(t *testing.T) {
	assert.InDelta(t, 123.3, RoundToOrder(123.345, -1, nil), 1e-9)
	assert.InDelta(t, 123.34, RoundToOrder(123.345, -2, nil), 1e-9)
	assert.InDelta(t, 123.0, RoundToOrder(123.345, 0, nil), 1e-9)
	assert.InDelta(t, 120.0, RoundToOrder(123.345, 1, nil), 1e-9)
	assert.InDelta(t, 100.0, RoundToOrder(123.345, 2, nil), 1e-9)
	assert.InDelta(t, 130.0, RoundToOrder(123.345, 1, math.Ceil), 1e-9)
	assert.Equal(t, 2.0, RoundToOrder(2.5, 0, nil))
}

func TestSqrtSumOfSquares(t *testing.T) {
	assert.InDelta(t, 1.0, SqrtSumOfSquares(-1.0), 1e-15)
	assert.InDelta(t, math.Sqrt(2), SqrtSumOfSquares(1.0, 1.0), 1e-15)
	assert.InDelta(t, math.Sqrt(4.25), SqrtSumOfSquares(2.0, 0.5), 1e-15)
}

func TestLinearSpace(t *testing.T) {
	result := LinearSpace(0, 1, 10)
	assert.Len(t, result, 10)
	assert.InDelta(t, 0.0, result[0], 1e-15)
	assert.InDelta(t, 1.0, result[9], 1e-15)

	result = LinearSpace(-25, 25, 51)
	assert.Len(t, result, 51)
	assert.InDelta(t, 0.0, result[25], 1e-12)
	assert.InDelta(t, 25.0, result[50], 1e-12)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, Median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, Median([]float64{4, 1, 3, 2}))
	assert.True(t, math.IsNaN(Median(nil)))

	values := []float64{3, 1, 2}
	Median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

func TestGetLogger(t *testing.T) {
	assert.Equal(t, zap.L(), GetLogger(context.Background()))

	logger := zap.NewNop()
	ctx := WithLogger(context.Background(), logger)
	assert.Equal(t, logger, GetLogger(ctx))
}

func TestPercentile(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}
	assert.Equal(t, 1.0, Percentile(sorted, 0))
	assert.Equal(t, 2.5, Percentile(sorted, 0.5))
	assert.Equal(t, 4.0, Percentile(sorted, 1))
	assert.InDelta(t, 1.75, Percentile(sorted, 0.25), 1e-12)
	assert.True(t, math.IsNaN(Percentile(nil, 0.5)))
}
