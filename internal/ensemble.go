package internal

import (
	"fmt"
	"math"

	"roboforecast/internal/domain"

	"github.com/montanaflynn/stats"
)

// Weights maps each projection method to its share of the blended estimate.
type Weights map[domain.Method]float64

const weightSumTolerance = 1e-9

// DefaultWeights mirrors the standing ensemble configuration: polynomial and
// CAGR weighted higher than the two flatter methods.
func DefaultWeights() Weights {
	return Weights{
		domain.Method_Linear:               0.20,
		domain.Method_Polynomial:           0.30,
		domain.Method_ExponentialSmoothing: 0.20,
		domain.Method_CAGR:                 0.30,
	}
}

func (w Weights) Validate() error {
	if len(w) != len(domain.Methods()) {
		return InvalidWeightError{Reason: fmt.Sprintf("expected %d weights, got %d", len(domain.Methods()), len(w))}
	}
	sum := 0.0
	for _, m := range domain.Methods() {
		weight, ok := w[m]
		if !ok {
			return InvalidWeightError{Reason: fmt.Sprintf("missing weight for %s", m)}
		}
		if math.IsNaN(weight) || weight < 0 {
			return InvalidWeightError{Reason: fmt.Sprintf("weight for %s must be a non-negative number, got %f", m, weight)}
		}
		sum += weight
	}
	if math.Abs(sum-1) > weightSumTolerance {
		return InvalidWeightError{Reason: fmt.Sprintf("weights should sum to 1, got %.12f", sum)}
	}
	return nil
}

// Combine runs all four fitters on the series and blends the survivors into a
// single estimate. A single method's failure does not abort the category;
// when some methods fail, the surviving weights are renormalized to sum to 1
// over the surviving subset. That renormalization is a deliberate policy
// choice - a three-method blend is reported as the category's estimate, not
// treated as equivalent to full agreement. Zero survivors is a
// NoViableMethodError.
func Combine(series domain.HistoricalSeries, targetYear int, weights Weights, alpha float64) (*domain.EnsembleResult, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	estimates := map[domain.Method]float64{}
	failures := map[domain.Method]string{}
	for _, method := range domain.Methods() {
		estimate, err := Fit(method, series, targetYear, alpha)
		if err != nil {
			failures[method] = err.Error()
			continue
		}
		estimates[method] = estimate.Value
	}
	if len(estimates) == 0 {
		return nil, NoViableMethodError{Category: series.Category, Failures: failures}
	}

	// With the full set of survivors the configured weights apply as-is;
	// renormalization only kicks in over a partial subset.
	survivingWeight := 1.0
	if len(estimates) < len(domain.Methods()) {
		survivingWeight = 0.0
		for method := range estimates {
			survivingWeight += weights[method]
		}
		if survivingWeight == 0 {
			return nil, NoViableMethodError{Category: series.Category, Failures: failures}
		}
	}

	blended := 0.0
	values := []float64{}
	for _, method := range domain.Methods() {
		value, ok := estimates[method]
		if !ok {
			continue
		}
		blended += value * (weights[method] / survivingWeight)
		values = append(values, value)
	}

	// Unweighted population stddev across the surviving estimates - it
	// measures disagreement between independent methods, not sampling error.
	stdDev, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate estimate dispersion: %w", err)
	}

	return &domain.EnsembleResult{
		Estimates: estimates,
		Failures:  failures,
		Blended:   blended,
		StdDev:    stdDev,
		Band: domain.Band{
			Low:  math.Max(0, blended-stdDev),
			High: blended + stdDev,
		},
		WideBand: domain.Band{
			Low:  math.Max(0, blended-2*stdDev),
			High: blended + 2*stdDev,
		},
	}, nil
}
