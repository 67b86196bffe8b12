// Package check cross-validates coefficients extracted from a gnuplot fit
// log against a local closed-form least-squares fit of the same samples.
package check

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/fitwrap/gnufit/pkg/dataset"
	"github.com/fitwrap/gnufit/pkg/fitlog"
)

// Result holds the outcome of a cross-check.
type Result struct {
	// Extracted are the coefficients parsed from the fit log.
	Extracted fitlog.FitResult `json:"extracted"`

	// Reference are the locally computed least-squares coefficients.
	Reference fitlog.FitResult `json:"reference"`

	// SlopeDelta is |extracted slope - reference slope|.
	SlopeDelta float64 `json:"slope_delta"`

	// InterceptDelta is |extracted intercept - reference intercept|.
	InterceptDelta float64 `json:"intercept_delta"`

	// Tolerance is the maximum delta accepted per coefficient.
	Tolerance float64 `json:"tolerance"`

	// RMSResiduals is the root-mean-square residual of the extracted
	// line against the samples.
	RMSResiduals float64 `json:"rms_residuals"`

	// RSquared is the coefficient of determination of the extracted line.
	RSquared float64 `json:"r_squared"`
}

// OK reports whether both coefficients are within tolerance of the
// local reference fit.
func (r *Result) OK() bool {
	return r.SlopeDelta <= r.Tolerance && r.InterceptDelta <= r.Tolerance
}

// Compare fits set locally by ordinary least squares and compares the
// extracted coefficients against it. The samples must be the same ones
// the external fit ran on.
func Compare(set *dataset.SampleSet, result *fitlog.FitResult, tolerance float64) (*Result, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}
	if set.Len() < 2 {
		return nil, fmt.Errorf("need at least 2 samples to fit a line, have %d", set.Len())
	}

	intercept, slope := stat.LinearRegression(set.X, set.Y, nil, false)

	r := &Result{
		Extracted:      *result,
		Reference:      fitlog.FitResult{Slope: slope, Intercept: intercept},
		SlopeDelta:     math.Abs(result.Slope - slope),
		InterceptDelta: math.Abs(result.Intercept - intercept),
		Tolerance:      tolerance,
		RMSResiduals:   rmsResiduals(set, result),
		RSquared:       stat.RSquared(set.X, set.Y, nil, result.Intercept, result.Slope),
	}

	return r, nil
}

func rmsResiduals(set *dataset.SampleSet, result *fitlog.FitResult) float64 {
	var sum float64
	for i := range set.X {
		resid := set.Y[i] - (result.Slope*set.X[i] + result.Intercept)
		sum += resid * resid
	}
	return math.Sqrt(sum / float64(set.Len()))
}
