package geometry

import (
	"fmt"
	"math"

	"github.com/uyouii/measurement-stats/utils"
	"github.com/uyouii/measurement-stats/value"
)

// Angle is an angular measurement stored in radians with its uncertainty.
type Angle struct {
	radians     float64
	uncertainty float64
}

func NewAngle(radians, uncertainty float64) Angle {
	return Angle{radians: radians, uncertainty: math.Abs(uncertainty)}
}

func AngleFromDegrees(degrees, uncertaintyDegrees float64) Angle {
	return NewAngle(degToRad(degrees), degToRad(uncertaintyDegrees))
}

// DefaultAngle is 0 +/- 1 radian.
func DefaultAngle() Angle {
	return NewAngle(0, 1)
}

func (a Angle) Radians() float64 {
	return a.radians
}

func (a Angle) Degrees() float64 {
	return radToDeg(a.radians)
}

func (a Angle) Uncertainty() float64 {
	return a.uncertainty
}

func (a Angle) UncertaintyDegrees() float64 {
	return radToDeg(a.uncertainty)
}

func (a *Angle) SetRadians(radians float64) {
	a.radians = radians
}

func (a *Angle) SetDegrees(degrees float64) {
	a.radians = degToRad(degrees)
}

func (a *Angle) SetUncertainty(uncertainty float64) {
	a.uncertainty = math.Abs(uncertainty)
}

func (a *Angle) SetUncertaintyDegrees(uncertainty float64) {
	a.uncertainty = math.Abs(degToRad(uncertainty))
}

// Value is the angle in radians as a ValueUncertainty.
func (a Angle) Value() value.ValueUncertainty {
	return value.New(a.radians, a.uncertainty)
}

func (a Angle) ValueDegrees() value.ValueUncertainty {
	return value.New(a.Degrees(), a.UncertaintyDegrees())
}

// PrettyPrint is the angle in degrees to three significant figures.
func (a Angle) PrettyPrint() float64 {
	return utils.RoundSignificant(a.Degrees(), 3)
}

// ConstrainToRevolution removes whole revolutions so the angle lies in
// [0, 360) degrees.
func (a *Angle) ConstrainToRevolution() *Angle {
	r := math.Mod(a.radians, 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	a.radians = r
	return a
}

// DifferenceBetween returns the smallest signed difference a - other, in
// [-180, 180) degrees.
func (a Angle) DifferenceBetween(other Angle) Angle {
	x, y := a, other
	x.ConstrainToRevolution()
	y.ConstrainToRevolution()

	result := x.Sub(y)
	degrees := floorMod(result.Degrees()+180, 360) - 180
	return NewAngle(degToRad(degrees), result.uncertainty)
}

func (a Angle) Add(other Angle) Angle {
	return fromValue(a.Value().Add(other.Value()))
}

func (a Angle) Sub(other Angle) Angle {
	return fromValue(a.Value().Sub(other.Value()))
}

func (a Angle) Mul(other Angle) Angle {
	return fromValue(a.Value().Mul(other.Value()))
}

func (a Angle) Div(other Angle) (Angle, error) {
	v, err := a.Value().Div(other.Value())
	if err != nil {
		return Angle{}, err
	}
	return fromValue(v), nil
}

func (a Angle) Pow(power float64) Angle {
	return fromValue(a.Value().Pow(power))
}

func (a Angle) String() string {
	return fmt.Sprintf("<Angle %s>", a.Value().Label())
}

func fromValue(v value.ValueUncertainty) Angle {
	return NewAngle(v.Raw(), v.RawUncertainty())
}

func degToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func radToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// floorMod keeps the sign of m, unlike math.Mod.
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r != 0 && (r < 0) != (m < 0) {
		r += m
	}
	return r
}
