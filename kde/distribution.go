package kde

import (
	"fmt"
	"math"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/model"
	"github.com/uyouii/measurement-stats/value"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// MeasurementInput is what a distribution is built from, either Numbers or
// Uncertain.
type MeasurementInput interface {
	measurementInput()
	Len() int
}

type Numbers []float64

type Uncertain []value.ValueUncertainty

func (Numbers) measurementInput()   {}
func (Uncertain) measurementInput() {}

func (n Numbers) Len() int   { return len(n) }
func (u Uncertain) Len() int { return len(u) }

// UncertaintyInput pairs uncertainties with Numbers. A nil UncertaintyInput
// lets the distribution's UncertaintyEstimator pick a shared one.
type UncertaintyInput interface {
	uncertaintyInput()
}

type SharedUncertainty float64

type Uncertainties []float64

func (SharedUncertainty) uncertaintyInput() {}
func (Uncertainties) uncertaintyInput()     {}

type Option func(*options)

type options struct {
	kernel    Kernel
	estimator UncertaintyEstimator
}

func WithKernel(kernel Kernel) Option {
	return func(o *options) {
		if kernel != nil {
			o.kernel = kernel
		}
	}
}

func WithUncertaintyEstimator(estimator UncertaintyEstimator) Option {
	return func(o *options) {
		if estimator != nil {
			o.estimator = estimator
		}
	}
}

// Distribution is a kernel density built from uncertain measurements. Each
// measurement carries the same share of the probability.
type Distribution struct {
	measurements []value.ValueUncertainty
	kernel       Kernel

	// display values, fixed at construction
	values        []float64
	uncertainties []float64
}

// NewDistribution uses the measurements as they are. A nil kernel means the
// gaussian kernel.
func NewDistribution(measurements []value.ValueUncertainty, kernel Kernel) *Distribution {
	if kernel == nil {
		kernel = NewGaussianKernel()
	}
	ms := append([]value.ValueUncertainty(nil), measurements...)
	values, uncertainties := value.Unzip(ms, false)
	return &Distribution{
		measurements:  ms,
		kernel:        kernel,
		values:        values,
		uncertainties: uncertainties,
	}
}

// Create builds a distribution from input. Uncertain measurements are used
// directly and uncertainties is ignored for them. Numbers get their
// uncertainties from uncertainties, or from the estimator when it is nil.
// Empty input returns common.ErrorNoMeasurements.
func Create(input MeasurementInput, uncertainties UncertaintyInput, opts ...Option) (*Distribution, error) {
	o := &options{
		kernel:    NewGaussianKernel(),
		estimator: SpacingEstimator{},
	}
	for _, opt := range opts {
		opt(o)
	}

	if input == nil || input.Len() == 0 {
		return nil, common.ErrorNoMeasurements
	}

	switch in := input.(type) {
	case Uncertain:
		return NewDistribution(in, o.kernel), nil
	case Numbers:
		measurements, err := attachUncertainties(in, uncertainties, o.estimator)
		if err != nil {
			return nil, err
		}
		return NewDistribution(measurements, o.kernel), nil
	default:
		return nil, fmt.Errorf("measurement input %T: %w", input, common.ErrorInvalidValue)
	}
}

// CreateFromValues is Create for plain numbers with estimated uncertainty.
func CreateFromValues(values []float64, opts ...Option) (*Distribution, error) {
	return Create(Numbers(values), nil, opts...)
}

func attachUncertainties(values Numbers, uncertainties UncertaintyInput, estimator UncertaintyEstimator) ([]value.ValueUncertainty, error) {
	switch u := uncertainties.(type) {
	case nil:
		shared := estimator.Estimate(values)
		res := make([]value.ValueUncertainty, len(values))
		for i, v := range values {
			res[i] = value.New(v, shared)
		}
		return res, nil
	case SharedUncertainty:
		res := make([]value.ValueUncertainty, len(values))
		for i, v := range values {
			res[i] = value.New(v, float64(u))
		}
		return res, nil
	case Uncertainties:
		res, err := value.Join(values, u)
		if err != nil {
			return nil, fmt.Errorf("measurements and uncertainties must be equal length: %w", err)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("uncertainty input %T: %w", uncertainties, common.ErrorInvalidValue)
	}
}

func (d *Distribution) Len() int {
	return len(d.measurements)
}

// Measurements returns a copy of the distribution's measurements.
func (d *Distribution) Measurements() []value.ValueUncertainty {
	return append([]value.ValueUncertainty(nil), d.measurements...)
}

func (d *Distribution) Kernel() Kernel {
	return d.kernel
}

// DensityAt sums the kernels of all measurements at x, unnormalized.
func (d *Distribution) DensityAt(x float64) float64 {
	if len(d.measurements) == 0 {
		return 0
	}
	return floats.Sum(d.kernel.Many(x, d.values, d.uncertainties))
}

func (d *Distribution) DensitiesAt(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.DensityAt(x)
	}
	return res
}

// ProbabilityAt is the density at x divided by the measurement count, so the
// whole distribution integrates to one.
func (d *Distribution) ProbabilityAt(x float64) float64 {
	if len(d.measurements) == 0 {
		return 0
	}
	return d.DensityAt(x) / float64(len(d.measurements))
}

func (d *Distribution) ProbabilitiesAt(xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = d.ProbabilityAt(x)
	}
	return res
}

// HeightedDensityAt scales each measurement's kernel by its height. Nil
// heights weigh every measurement as one.
func (d *Distribution) HeightedDensityAt(x float64, heights []float64) (float64, error) {
	heights, err := d.checkHeights(heights)
	if err != nil {
		return 0, err
	}
	if len(d.measurements) == 0 {
		return 0, nil
	}
	return floats.Dot(d.kernel.Many(x, d.values, d.uncertainties), heights), nil
}

func (d *Distribution) HeightedDensitiesAt(xs []float64, heights []float64) ([]float64, error) {
	heights, err := d.checkHeights(heights)
	if err != nil {
		return nil, err
	}
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i], _ = d.HeightedDensityAt(x, heights)
	}
	return res, nil
}

// HeightedProbabilityAt normalizes HeightedDensityAt by the total height.
func (d *Distribution) HeightedProbabilityAt(x float64, heights []float64) (float64, error) {
	heights, err := d.checkHeights(heights)
	if err != nil {
		return 0, err
	}
	density, _ := d.HeightedDensityAt(x, heights)
	total := floats.Sum(heights)
	if total == 0 {
		return 0, nil
	}
	return density / total, nil
}

func (d *Distribution) HeightedProbabilitiesAt(xs []float64, heights []float64) ([]float64, error) {
	res, err := d.HeightedDensitiesAt(xs, heights)
	if err != nil {
		return nil, err
	}
	heights, _ = d.checkHeights(heights)
	total := floats.Sum(heights)
	if total == 0 {
		return make([]float64, len(xs)), nil
	}
	floats.Scale(1/total, res)
	return res, nil
}

func (d *Distribution) checkHeights(heights []float64) ([]float64, error) {
	if heights == nil {
		return InitOnes(len(d.measurements)), nil
	}
	if len(heights) != len(d.measurements) {
		return nil, fmt.Errorf("%d heights for %d measurements: %w",
			len(heights), len(d.measurements), common.ErrorInvalidValue)
	}
	return heights, nil
}

// MinimumValue is the measurement with the lowest displayed value. On ties
// the larger uncertainty wins. ok is false for an empty distribution.
func (d *Distribution) MinimumValue() (value.ValueUncertainty, bool) {
	return value.Minimum(d.measurements)
}

func (d *Distribution) MaximumValue() (value.ValueUncertainty, bool) {
	return value.Maximum(d.measurements)
}

// NakedMeasurementValues returns the measurements without uncertainty,
// rounded unless raw is set.
func (d *Distribution) NakedMeasurementValues(raw bool) []float64 {
	if !raw {
		return append([]float64(nil), d.values...)
	}
	values, _ := value.Unzip(d.measurements, true)
	return values
}

// MinimumBoundary is the lowest value - sigma*uncertainty over all
// measurements, every measurement lies at least sigma deviations above it.
// An empty distribution returns 0.
func (d *Distribution) MinimumBoundary(sigma float64) float64 {
	if len(d.measurements) == 0 {
		return 0
	}
	res := math.Inf(1)
	for i := range d.values {
		res = math.Min(res, d.values[i]-sigma*d.uncertainties[i])
	}
	return res
}

func (d *Distribution) MaximumBoundary(sigma float64) float64 {
	if len(d.measurements) == 0 {
		return 0
	}
	res := math.Inf(-1)
	for i := range d.values {
		res = math.Max(res, d.values[i]+sigma*d.uncertainties[i])
	}
	return res
}

// Cdf integrates the probability between consecutive grid points with
// gauss-legendre quadrature. The first point accumulates nothing.
func (d *Distribution) Cdf(grid []float64) []model.Cdf {
	res := make([]model.Cdf, 0, len(grid))
	if len(grid) == 0 {
		return res
	}

	var cumSum float64
	res = append(res, model.Cdf{X: grid[0]})
	for i := 1; i < len(grid); i++ {
		cumSum += quad.Fixed(d.ProbabilityAt, grid[i-1], grid[i], cdfQuadNodes, nil, 0)
		res = append(res, model.Cdf{
			X:     grid[i],
			Value: cumSum,
		})
	}
	return res
}

// Densities pairs each grid point with its probability.
func (d *Distribution) Densities(grid []float64) []model.Density {
	res := make([]model.Density, len(grid))
	for i, x := range grid {
		res[i] = model.Density{
			X:     x,
			Value: d.ProbabilityAt(x),
		}
	}
	return res
}
