package geometry

import (
	"fmt"
	"math"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/utils"
	"github.com/uyouii/measurement-stats/value"
)

const (
	angleZeroTolerance = 1e-6
	angleUnitTolerance = 1e-5
)

// Point2D is a position whose coordinates carry uncertainty.
type Point2D struct {
	X value.ValueUncertainty
	Y value.ValueUncertainty
}

func NewPoint2D(x, y value.ValueUncertainty) Point2D {
	return Point2D{X: x, Y: y}
}

// DefaultPoint2D is (0 +/- 1, 0 +/- 1).
func DefaultPoint2D() Point2D {
	return NewPoint2D(value.Default(), value.Default())
}

func exactOrigin() Point2D {
	return NewPoint2D(value.New(0, 0), value.New(0, 0))
}

// Length is the distance from an exact origin.
func (p Point2D) Length() value.ValueUncertainty {
	return p.DistanceFrom(exactOrigin())
}

func (p Point2D) DistanceFrom(other Point2D) value.ValueUncertainty {
	dx := p.X.Sub(other.X)
	dy := p.Y.Sub(other.Y)
	return dx.Mul(dx).Add(dy.Mul(dy)).Pow(0.5)
}

func (p Point2D) Nonzero() bool {
	return p.X.Value() != 0 || p.Y.Value() != 0
}

func (p Point2D) Clone() Point2D {
	return NewPoint2D(p.X.Clone(), p.Y.Clone())
}

// Invert flips the sign of both coordinates in place.
func (p *Point2D) Invert() {
	p.X.SetRaw(-p.X.Raw())
	p.Y.SetRaw(-p.Y.Raw())
}

// Rotate turns the point in place by angle around origin, or around an
// exact origin when origin is nil. The origin's uncertainty is added in
// quadrature to both coordinates.
func (p *Point2D) Rotate(angle Angle, origin *Point2D) *Point2D {
	o := exactOrigin()
	if origin != nil {
		o = *origin
	}
	a := angle.Radians()
	x := p.X.Raw() - o.X.Raw()
	y := p.Y.Raw() - o.Y.Raw()
	cos, sin := math.Cos(a), math.Sin(a)

	p.X.Update(x*cos-y*sin+o.X.Raw(), utils.SqrtSumOfSquares(p.X.RawUncertainty(), o.X.RawUncertainty()))
	p.Y.Update(y*cos+x*sin+o.Y.Raw(), utils.SqrtSumOfSquares(p.Y.RawUncertainty(), o.Y.RawUncertainty()))
	return p
}

// Normalize scales the point in place to unit length. A zero length point
// is left alone and false returned.
func (p *Point2D) Normalize() bool {
	length := p.Length()
	if length.Value() == 0 {
		return false
	}
	x, err := p.X.Div(length)
	if err != nil {
		return false
	}
	y, err := p.Y.Div(length)
	if err != nil {
		return false
	}
	p.X, p.Y = x, y
	return true
}

// AngleBetween is the angle between the two points as vectors from the
// origin, from the normalized dot product. Degenerate lengths give 0 +/- 90
// degrees.
func (p Point2D) AngleBetween(other Point2D) (Angle, error) {
	numerator := p.X.Mul(other.X).Add(p.Y.Mul(other.Y))
	denominator := p.Length().Mul(other.Length())

	if utils.EquivalentWithin(denominator.Value(), 0, angleZeroTolerance) {
		return NewAngle(0, 0.5*math.Pi), nil
	}

	result, err := numerator.Div(denominator)
	if err != nil {
		return Angle{}, err
	}
	if utils.EquivalentWithin(result.Value(), 1, angleUnitTolerance) {
		return DefaultAngle(), nil
	}

	var a float64
	switch {
	case utils.EquivalentWithin(result.Value(), -1, angleUnitTolerance):
		a = math.Pi
	case result.Raw() < -1 || result.Raw() > 1:
		return Angle{}, fmt.Errorf("cosine %s outside [-1, 1]: %w", result, common.ErrorInvalidValue)
	default:
		a = math.Acos(result.Raw())
	}

	if utils.EquivalentWithin(a, math.Pi, angleUnitTolerance) {
		return AngleFromDegrees(radToDeg(a), 180), nil
	}

	r := result.Raw()
	return NewAngle(a, math.Abs(1/math.Sqrt(1-r*r))*result.RawUncertainty()), nil
}

func (p Point2D) Add(other Point2D) Point2D {
	return NewPoint2D(p.X.Add(other.X), p.Y.Add(other.Y))
}

func (p Point2D) Sub(other Point2D) Point2D {
	return NewPoint2D(p.X.Sub(other.X), p.Y.Sub(other.Y))
}

func (p Point2D) Mul(other Point2D) Point2D {
	return NewPoint2D(p.X.Mul(other.X), p.Y.Mul(other.Y))
}

func (p Point2D) Div(other Point2D) (Point2D, error) {
	x, err := p.X.Div(other.X)
	if err != nil {
		return Point2D{}, err
	}
	y, err := p.Y.Div(other.Y)
	if err != nil {
		return Point2D{}, err
	}
	return NewPoint2D(x, y), nil
}

// Translate adds o to both coordinates.
func (p Point2D) Translate(o value.Operand) Point2D {
	return NewPoint2D(p.X.Add(o), p.Y.Add(o))
}

// Scale multiplies both coordinates by o.
func (p Point2D) Scale(o value.Operand) Point2D {
	return NewPoint2D(p.X.Mul(o), p.Y.Mul(o))
}

func (p Point2D) Pow(power float64) Point2D {
	return NewPoint2D(p.X.Pow(power), p.Y.Pow(power))
}

func (p Point2D) Serialize() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"x": p.X.Serialize(),
		"y": p.Y.Serialize(),
	}
}

func (p Point2D) String() string {
	return fmt.Sprintf("<Point2D %s %s>", p.X.Label(), p.Y.Label())
}
