package common

import "errors"

var (
	ErrorInvalidValue   = errors.New("invalid value")
	ErrorNoMeasurements = errors.New("no measurements")
	ErrorDivisionByZero = errors.New("division by zero")
	ErrorNotConverged   = errors.New("could not converge")
	ErrorInvalidConfig  = errors.New("invalid config")
)
