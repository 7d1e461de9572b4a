package kde

import (
	"math"
	"sort"

	"github.com/uyouii/measurement-stats/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// UncertaintyEstimator picks one shared uncertainty for measurements that
// were reported without any.
type UncertaintyEstimator interface {
	Estimate(values []float64) float64
}

// SpacingEstimator takes half the median gap between neighbouring sorted
// values, the quantization of the values implies their uncertainty.
type SpacingEstimator struct{}

func (SpacingEstimator) Estimate(values []float64) float64 {
	if len(values) < 2 {
		return MinEstimatedUncertainty
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	deltas := make([]float64, len(sorted)-1)
	for i := range deltas {
		deltas[i] = math.Abs(sorted[i+1] - sorted[i])
	}
	return math.Max(MinEstimatedUncertainty, 0.5*utils.Median(deltas))
}

// NormalReferenceEstimator is the rule-of-thumb bandwidth for a gaussian
// kernel, C * min(std, iqr/1.349) * n^(-1/5).
type NormalReferenceEstimator struct {
	kernel *GaussianKernel
}

func NewNormalReferenceEstimator(kernel *GaussianKernel) *NormalReferenceEstimator {
	if kernel == nil {
		kernel = NewGaussianKernel()
	}
	return &NormalReferenceEstimator{
		kernel: kernel,
	}
}

func (e *NormalReferenceEstimator) Estimate(values []float64) float64 {
	if len(values) < 2 {
		return MinEstimatedUncertainty
	}
	C := e.kernel.NormalReferenceConstant()
	A := selectSigma(values)
	n := len(values)
	return math.Max(MinEstimatedUncertainty, C*A*math.Pow(float64(n), -0.2))
}

func selectSigma(x []float64) float64 {
	normalize := 1.349

	sorted := append([]float64(nil), x...)
	floats.Argsort(sorted, make([]int, len(sorted)))

	q75 := stat.Quantile(0.75, stat.Empirical, sorted, nil)
	q25 := stat.Quantile(0.25, stat.Empirical, sorted, nil)
	iqr := (q75 - q25) / normalize

	stdDev := stat.StdDev(sorted, nil)

	if iqr > 0 {
		if stdDev < iqr {
			return stdDev
		}
		return iqr
	}
	return stdDev
}
