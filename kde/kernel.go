package kde

import (
	"math"

	"github.com/uyouii/measurement-stats/value"
)

// Kernel spreads a measurement's probability along the x axis. Many must
// agree with Single summed over the same measurements.
type Kernel interface {
	Single(x float64, measurement value.ValueUncertainty, maxSigma float64) float64
	Many(x float64, values, uncertainties []float64) []float64
}

type GaussianKernel struct {
	l2Norm                  float64
	kernelVar               float64
	order                   int
	normalReferenceConstant float64

	// beyond MaxSigma widths from the center the density is exactly 0
	MaxSigma float64
}

func NewGaussianKernel() *GaussianKernel {
	return &GaussianKernel{
		l2Norm:    1.0 / (2.0 * math.Sqrt(math.Pi)),
		kernelVar: 1.0,
		order:     2,
		MaxSigma:  DefaultMaxSigma,
	}
}

// Shape is the standard normal density.
func (k *GaussianKernel) Shape(x float64) float64 {
	return 0.3989422804014327 * math.Exp(-x*x/2.0)
}

func (k *GaussianKernel) Single(x float64, measurement value.ValueUncertainty, maxSigma float64) float64 {
	return k.evaluate(x, measurement.Value(), measurement.Uncertainty(), maxSigma)
}

func (k *GaussianKernel) Many(x float64, values, uncertainties []float64) []float64 {
	res := make([]float64, len(values))
	for i := range values {
		res[i] = k.evaluate(x, values[i], uncertainties[i], k.MaxSigma)
	}
	return res
}

func (k *GaussianKernel) evaluate(x, center, width, maxSigma float64) float64 {
	width = max(width, MinKernelWidth)
	if x <= center-maxSigma*width || x >= center+maxSigma*width {
		return 0
	}
	return k.Shape((x-center)/width) / width
}

func (k *GaussianKernel) NormalReferenceConstant() float64 {
	nu := k.order
	if k.normalReferenceConstant == 0 {
		numerator := math.Pow(math.Pi, 0.5) * math.Pow(factorial(nu), 3) * k.l2Norm
		denom := 2.0 * float64(nu) * factorial(2*nu) * math.Pow(k.Moments(nu), 2)
		k.normalReferenceConstant = 2 * math.Pow(numerator/denom, 1.0/float64(2*nu+1))
	}
	return k.normalReferenceConstant
}

func (k *GaussianKernel) Moments(n int) float64 {
	if n == 1 {
		return 0
	}
	if n == 2 {
		return k.kernelVar
	}
	return 1.0
}

// SingleFunc evaluates one measurement's kernel at x.
type SingleFunc func(x float64, measurement value.ValueUncertainty, maxSigma float64) float64

// FuncKernel adapts a SingleFunc into a Kernel, Many loops over Single with
// MaxSigma as the cutoff.
type FuncKernel struct {
	SingleFunc SingleFunc
	MaxSigma   float64
}

func (k FuncKernel) Single(x float64, measurement value.ValueUncertainty, maxSigma float64) float64 {
	return k.SingleFunc(x, measurement, maxSigma)
}

func (k FuncKernel) Many(x float64, values, uncertainties []float64) []float64 {
	maxSigma := k.MaxSigma
	if maxSigma <= 0 {
		maxSigma = DefaultMaxSigma
	}
	res := make([]float64, len(values))
	for i := range values {
		// values are already rounded, rounding them again changes nothing
		res[i] = k.SingleFunc(x, value.New(values[i], uncertainties[i]), maxSigma)
	}
	return res
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}
