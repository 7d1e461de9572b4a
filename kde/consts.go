package kde

const (
	DefaultMaxSigma = 10.0

	// kernel width floor for exact measurements
	MinKernelWidth = 1e-6
	// floor of the spacing based uncertainty estimate
	MinEstimatedUncertainty = 1e-5

	DefaultRangePoints = 1024

	// adaptive ranges refine inside value +/- AdaptiveWindowSigma*uncertainty
	// with steps of AdaptiveStepFraction*uncertainty
	AdaptiveWindowSigma   = 6.0
	AdaptiveStepFraction  = 0.25
	AdaptiveDeltaFraction = 0.01

	PercentileRangePoints  = 2048
	PercentileTolerance    = 1e-6
	MaxPercentileIteration = 10000

	PopulationBins         = 512
	DefaultPopulationCount = 2048
	// population size behind population based percentiles and boxes
	DefaultWeightedCount = 4096

	// overlap2 quadrature: extra subintervals, gauss-legendre nodes and
	// absolute tolerance
	Overlap2Limit     = 100
	Overlap2Nodes     = 10
	Overlap2Tolerance = 1.49e-8

	cdfQuadNodes = 50
)
