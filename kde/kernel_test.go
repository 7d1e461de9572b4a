package kde

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/uyouii/measurement-stats/value"
	"gonum.org/v1/gonum/floats"
)

func TestGaussianKernelSingle(t *testing.T) {
	k := NewGaussianKernel()

	tests := []struct {
		name        string
		x           float64
		measurement value.ValueUncertainty
		want        float64
	}{
		{"center", 0, value.New(0, 1), 1 / math.Sqrt(2*math.Pi)},
		{"one sigma", 3, value.New(1, 2), math.Exp(-0.5) / math.Sqrt(2*math.Pi) / 2},
		{"at cutoff", 10, value.New(0, 1), 0},
		{"beyond cutoff", -12, value.New(0, 1), 0},
		{"exact measurement", 2, value.New(2, 0), 1 / math.Sqrt(2*math.Pi) / MinKernelWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := k.Single(tt.x, tt.measurement, DefaultMaxSigma)
			assert.InDelta(t, tt.want, got, 1e-9*math.Max(1, tt.want))
		})
	}
}

func TestGaussianKernelUsesDisplayValues(t *testing.T) {
	k := NewGaussianKernel()
	// displays as 3.14 +/- 0.05
	m := value.New(3.14159, 0.0512)
	assert.Equal(t, k.Single(3.14, value.New(3.14, 0.05), DefaultMaxSigma), k.Single(3.14, m, DefaultMaxSigma))
}

func TestKernelManyMatchesSingle(t *testing.T) {
	measurements := []value.ValueUncertainty{
		value.New(0, 1), value.New(2.5, 0.5), value.New(-4, 2), value.New(30, 1),
	}
	values, uncertainties := value.Unzip(measurements, false)

	kernels := map[string]Kernel{
		"gaussian": NewGaussianKernel(),
		"func":     FuncKernel{SingleFunc: NewGaussianKernel().Single},
	}
	for name, k := range kernels {
		t.Run(name, func(t *testing.T) {
			for _, x := range []float64{-5, -1, 0, 0.3, 2.5, 7, 29} {
				expected := 0.0
				for _, m := range measurements {
					expected += k.Single(x, m, DefaultMaxSigma)
				}
				assert.InDelta(t, expected, floats.Sum(k.Many(x, values, uncertainties)), 1e-12)
			}
		})
	}
}

func TestNormalReferenceConstant(t *testing.T) {
	k := NewGaussianKernel()
	assert.InDelta(t, 1.0592238410488122, k.NormalReferenceConstant(), 1e-9)
	assert.Equal(t, 0.0, k.Moments(1))
	assert.Equal(t, 1.0, k.Moments(2))
}
