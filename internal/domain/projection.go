package domain

import (
	"time"

	"github.com/google/uuid"
)

// Method identifies one of the four extrapolation methods. The set is closed -
// the ensemble's weighting is defined in terms of exactly these four.
type Method string

const (
	Method_Linear               Method = "linear"
	Method_Polynomial           Method = "polynomial"
	Method_ExponentialSmoothing Method = "exponential_smoothing"
	Method_CAGR                 Method = "cagr"
)

// Methods returns the fixed method order used everywhere results are
// iterated, so output is deterministic.
func Methods() []Method {
	return []Method{
		Method_Linear,
		Method_Polynomial,
		Method_ExponentialSmoothing,
		Method_CAGR,
	}
}

// MethodEstimate is a single method's projected value for one category at the
// target year.
type MethodEstimate struct {
	Method Method  `json:"method"`
	Value  float64 `json:"value"`
}

type Band struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// EnsembleResult holds one category's blended projection. Blended is a convex
// combination of the surviving method estimates; StdDev is the population
// standard deviation across those estimates and is a disagreement indicator,
// not a Gaussian confidence interval.
type EnsembleResult struct {
	Estimates map[Method]float64 `json:"estimates"`
	Failures  map[Method]string  `json:"failures,omitempty"`
	Blended   float64            `json:"blended"`
	StdDev    float64            `json:"stdDev"`
	Band      Band               `json:"band"`
	WideBand  Band               `json:"wideBand"`
}

// Estimate returns a method's projected value, or nil if that method failed
// for this category.
func (r EnsembleResult) Estimate(m Method) *float64 {
	v, ok := r.Estimates[m]
	if !ok {
		return nil
	}
	return &v
}

type ConfidenceLabel string

const (
	Confidence_High   ConfidenceLabel = "high"
	Confidence_Medium ConfidenceLabel = "medium"
	Confidence_Low    ConfidenceLabel = "low"
)

// CategoryProjection pairs a category with either its ensemble result or an
// explicit failure reason. Exactly one of Result and Err is set.
type CategoryProjection struct {
	Category CategoryDescriptor
	Result   *EnsembleResult
	Err      string

	// Share of the category's share-base blended estimate. ShareErr carries
	// the reason when the share could not be derived.
	Share    *float64
	ShareErr string

	// CAGR over the observed window, nil when undefined (first value <= 0).
	HistoricalCAGR *float64

	Confidence ConfidenceLabel
}

// ProjectionSet is the full output of one projection run. Projections keeps
// the declared category order.
type ProjectionSet struct {
	RunID       uuid.UUID
	TargetYear  int
	CreatedAt   time.Time
	Projections []CategoryProjection
}

func (ps ProjectionSet) Get(categoryID string) *CategoryProjection {
	for i := range ps.Projections {
		if ps.Projections[i].Category.ID == categoryID {
			return &ps.Projections[i]
		}
	}
	return nil
}

func (ps ProjectionSet) FailedCategories() []string {
	failed := []string{}
	for _, p := range ps.Projections {
		if p.Err != "" {
			failed = append(failed, p.Category.ID)
		}
	}
	return failed
}
