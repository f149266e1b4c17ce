package app

import (
	"context"
	"fmt"
	"math"
	"time"

	"roboforecast/internal"
	"roboforecast/internal/domain"
	"roboforecast/internal/logger"

	"github.com/google/uuid"
)

type ProjectionHandler struct{}

type RunConfig struct {
	TargetYear int
	Weights    internal.Weights
	// Alpha is the smoothing factor for the exponential smoothing method.
	Alpha float64
}

type RunProjectionsInput struct {
	Series     map[string]domain.HistoricalSeries
	Categories []domain.CategoryDescriptor
	Config     RunConfig
}

// RunProjections projects every configured category at the target year and
// derives the cross-category quantities. Configuration problems are fatal and
// surface immediately; a single category's failure is recorded against that
// category and the run continues.
func (h ProjectionHandler) RunProjections(ctx context.Context, in RunProjectionsInput) (*domain.ProjectionSet, error) {
	log := logger.FromContext(ctx)

	if err := in.Config.Weights.Validate(); err != nil {
		return nil, err
	}
	if in.Config.Alpha <= 0 || in.Config.Alpha > 1 {
		return nil, fmt.Errorf("smoothing factor must be in (0, 1], got %f", in.Config.Alpha)
	}
	maxObservedYear := 0
	for _, series := range in.Series {
		if year := series.Last().Year; year > maxObservedYear {
			maxObservedYear = year
		}
	}
	if in.Config.TargetYear <= maxObservedYear {
		return nil, fmt.Errorf("target year %d must be after the newest observed year %d", in.Config.TargetYear, maxObservedYear)
	}

	set := &domain.ProjectionSet{
		RunID:       uuid.New(),
		TargetYear:  in.Config.TargetYear,
		CreatedAt:   time.Now().UTC(),
		Projections: make([]domain.CategoryProjection, 0, len(in.Categories)),
	}

	log.Infow("starting projection run",
		"runId", set.RunID,
		"targetYear", in.Config.TargetYear,
		"categories", len(in.Categories),
	)

	for _, category := range in.Categories {
		// fits are near-instantaneous, so cancellation is only checked
		// between categories
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		projection := domain.CategoryProjection{Category: category}

		series, ok := in.Series[category.ID]
		if !ok {
			projection.Err = fmt.Sprintf("no historical series for category %s", category.ID)
		} else {
			result, err := internal.Combine(series, in.Config.TargetYear, in.Config.Weights, in.Config.Alpha)
			if err != nil {
				projection.Err = err.Error()
			} else {
				projection.Result = result
				projection.HistoricalCAGR = historicalCAGR(series)
				projection.Confidence = confidenceLabel(*result)
			}
		}

		if projection.Err != "" {
			log.Warnw("category projection failed",
				"runId", set.RunID,
				"category", category.ID,
				"reason", projection.Err,
			)
		}

		set.Projections = append(set.Projections, projection)
	}

	deriveShares(set)

	log.Infow("projection run complete",
		"runId", set.RunID,
		"failedCategories", set.FailedCategories(),
	)

	return set, nil
}

// deriveShares computes each category's share of its share-base category's
// blended estimate. A failed base makes the share a recorded
// DerivedMetricError, never a silent zero.
func deriveShares(set *domain.ProjectionSet) {
	for i := range set.Projections {
		projection := &set.Projections[i]
		baseID := projection.Category.ShareBase
		if baseID == "" || projection.Result == nil {
			continue
		}

		metric := fmt.Sprintf("%s share of %s", projection.Category.ID, baseID)
		base := set.Get(baseID)
		if base == nil || base.Result == nil {
			projection.ShareErr = internal.DerivedMetricError{
				Metric: metric,
				Reason: fmt.Sprintf("base category %s failed to project", baseID),
			}.Error()
			continue
		}
		if base.Result.Blended == 0 {
			projection.ShareErr = internal.DerivedMetricError{
				Metric: metric,
				Reason: fmt.Sprintf("base category %s projected zero", baseID),
			}.Error()
			continue
		}

		share := projection.Result.Blended / base.Result.Blended
		projection.Share = &share
	}
}

// historicalCAGR is the compound annual growth rate over the observed window,
// reported alongside the projection. Distinct from the CAGR fitter - this is
// purely descriptive. Nil when undefined.
func historicalCAGR(series domain.HistoricalSeries) *float64 {
	first := series.First()
	last := series.Last()
	if first.Value <= 0 || last.Value <= 0 || series.YearsElapsed() == 0 {
		return nil
	}
	rate := math.Pow(last.Value/first.Value, 1/float64(series.YearsElapsed())) - 1
	return &rate
}

// confidenceLabel summarizes method disagreement relative to the blended
// estimate.
func confidenceLabel(result domain.EnsembleResult) domain.ConfidenceLabel {
	if result.Blended == 0 {
		return domain.Confidence_Low
	}
	relativeDispersion := result.StdDev / math.Abs(result.Blended)
	switch {
	case relativeDispersion < 0.05:
		return domain.Confidence_High
	case relativeDispersion < 0.15:
		return domain.Confidence_Medium
	default:
		return domain.Confidence_Low
	}
}
