package report

import (
	"roboforecast/internal/domain"
)

// ProjectionRow is the flat, presentation-ready shape of one category's
// projection. Method columns are nil when that fitter failed; Share is nil
// when the category has no share base; Note carries the failure reason for
// categories that could not be projected.
type ProjectionRow struct {
	Category             string   `csv:"category" json:"category"`
	DisplayName          string   `csv:"display_name" json:"displayName"`
	Kind                 string   `csv:"kind" json:"kind"`
	TargetYear           int      `csv:"target_year" json:"targetYear"`
	Blended              *float64 `csv:"blended" json:"blended"`
	Linear               *float64 `csv:"linear" json:"linear"`
	Polynomial           *float64 `csv:"polynomial" json:"polynomial"`
	ExponentialSmoothing *float64 `csv:"exponential_smoothing" json:"exponentialSmoothing"`
	CAGR                 *float64 `csv:"cagr" json:"cagr"`
	StdDeviation         *float64 `csv:"std_deviation" json:"stdDeviation"`
	Low                  *float64 `csv:"low_1sd" json:"low"`
	High                 *float64 `csv:"high_1sd" json:"high"`
	WideLow              *float64 `csv:"low_2sd" json:"wideLow"`
	WideHigh             *float64 `csv:"high_2sd" json:"wideHigh"`
	ShareOfBase          *float64 `csv:"share_of_base" json:"shareOfBase"`
	HistoricalCAGR       *float64 `csv:"historical_cagr" json:"historicalCAGR"`
	Confidence           string   `csv:"confidence" json:"confidence"`
	Note                 string   `csv:"note" json:"note,omitempty"`
}

// Assemble flattens a projection set into rows. Pure shaping - no
// computation. Row order follows the set's declared category order.
func Assemble(set domain.ProjectionSet) []ProjectionRow {
	rows := make([]ProjectionRow, 0, len(set.Projections))
	for _, projection := range set.Projections {
		row := ProjectionRow{
			Category:       projection.Category.ID,
			DisplayName:    projection.Category.DisplayName,
			Kind:           string(projection.Category.Kind),
			TargetYear:     set.TargetYear,
			ShareOfBase:    projection.Share,
			HistoricalCAGR: projection.HistoricalCAGR,
			Confidence:     string(projection.Confidence),
			Note:           projection.Err,
		}
		if projection.ShareErr != "" {
			row.Note = projection.ShareErr
		}

		if result := projection.Result; result != nil {
			row.Blended = float64Ptr(result.Blended)
			row.Linear = result.Estimate(domain.Method_Linear)
			row.Polynomial = result.Estimate(domain.Method_Polynomial)
			row.ExponentialSmoothing = result.Estimate(domain.Method_ExponentialSmoothing)
			row.CAGR = result.Estimate(domain.Method_CAGR)
			row.StdDeviation = float64Ptr(result.StdDev)
			row.Low = float64Ptr(result.Band.Low)
			row.High = float64Ptr(result.Band.High)
			row.WideLow = float64Ptr(result.WideBand.Low)
			row.WideHigh = float64Ptr(result.WideBand.High)
		}

		rows = append(rows, row)
	}
	return rows
}

func float64Ptr(f float64) *float64 {
	return &f
}
