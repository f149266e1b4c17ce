package internal

import (
	"fmt"

	"roboforecast/internal/domain"
)

// InsufficientDataError means a series has fewer observations than a method
// requires.
type InsufficientDataError struct {
	Method   domain.Method
	Required int
	Got      int
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("%s requires at least %d observations, got %d", e.Method, e.Required, e.Got)
}

// DegenerateInputError means a fit is mathematically undefined for the given
// series, e.g. CAGR from a non-positive base.
type DegenerateInputError struct {
	Method domain.Method
	Reason string
}

func (e DegenerateInputError) Error() string {
	return fmt.Sprintf("%s fit is undefined: %s", e.Method, e.Reason)
}

// InvalidWeightError means the configured ensemble weights are malformed.
// This is a configuration mistake, not a data quality issue, and is fatal at
// setup.
type InvalidWeightError struct {
	Reason string
}

func (e InvalidWeightError) Error() string {
	return fmt.Sprintf("invalid ensemble weights: %s", e.Reason)
}

// NoViableMethodError means every method failed for a category, so it cannot
// be projected at all.
type NoViableMethodError struct {
	Category string
	Failures map[domain.Method]string
}

func (e NoViableMethodError) Error() string {
	return fmt.Sprintf("no viable projection method for %s: %v", e.Category, e.Failures)
}

// DerivedMetricError means a cross-category quantity cannot be computed
// because its dependency failed. Derived metrics never silently default.
type DerivedMetricError struct {
	Metric string
	Reason string
}

func (e DerivedMetricError) Error() string {
	return fmt.Sprintf("cannot derive %s: %s", e.Metric, e.Reason)
}
