package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/uyouii/measurement-stats/common"
	"github.com/uyouii/measurement-stats/value"
)

// parseMeasurement reads VALUE or VALUE:UNCERTAINTY. A bare value gets the
// shared uncertainty.
func parseMeasurement(s string, shared float64) (value.ValueUncertainty, error) {
	v, u, found := strings.Cut(strings.TrimSpace(s), ":")
	x, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return value.ValueUncertainty{}, fmt.Errorf("measurement %q: %v: %w", s, err, common.ErrorInvalidValue)
	}
	if !found {
		return value.New(x, shared), nil
	}
	unc, err := strconv.ParseFloat(u, 64)
	if err != nil {
		return value.ValueUncertainty{}, fmt.Errorf("uncertainty %q: %v: %w", s, err, common.ErrorInvalidValue)
	}
	return value.New(x, unc), nil
}

func parseMeasurements(fields []string, shared float64) ([]value.ValueUncertainty, error) {
	var res []value.ValueUncertainty
	for _, f := range fields {
		for _, part := range strings.Split(f, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			m, err := parseMeasurement(part, shared)
			if err != nil {
				return nil, err
			}
			res = append(res, m)
		}
	}
	return res, nil
}

// readMeasurements parses whitespace separated measurements from r.
func readMeasurements(r io.Reader, shared float64) ([]value.ValueUncertainty, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var fields []string
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parseMeasurements(fields, shared)
}
