package report

import (
	"fmt"
	"strings"

	"roboforecast/internal/domain"

	"github.com/shopspring/decimal"
)

const reportRule = 80

// TextReport renders a projection set as the fixed-width report handed to
// report consumers. Market values are billions USD, installations are
// thousands of units.
func TextReport(set domain.ProjectionSet) string {
	var b strings.Builder

	rule := strings.Repeat("=", reportRule)
	subRule := strings.Repeat("-", reportRule)

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("ROBOTICS INDUSTRY PROJECTIONS FOR %d\n", set.TargetYear))
	b.WriteString(rule + "\n\n")

	writeGlobalSection(&b, set, subRule)
	writeKindSection(&b, set, domain.CategoryKind_Region, fmt.Sprintf("REGIONAL MARKET BREAKDOWN (%d)", set.TargetYear), subRule, "$%8s billion")
	writeKindSection(&b, set, domain.CategoryKind_Segment, fmt.Sprintf("INDUSTRY SEGMENT BREAKDOWN (%d)", set.TargetYear), subRule, "$%8s billion")
	writeInstallationsSection(&b, set, subRule)
	writeKeyInsights(&b, set, subRule)
	writeFailures(&b, set, subRule)

	b.WriteString(rule + "\n")
	b.WriteString(fmt.Sprintf("Report generated on: %s\n", set.CreatedAt.Format("2006-01-02 15:04:05")))
	b.WriteString(rule + "\n")

	return b.String()
}

func writeGlobalSection(b *strings.Builder, set domain.ProjectionSet, subRule string) {
	b.WriteString("GLOBAL MARKET SIZE\n")
	b.WriteString(subRule + "\n")

	var global *domain.CategoryProjection
	for i := range set.Projections {
		if set.Projections[i].Category.Kind == domain.CategoryKind_Global {
			global = &set.Projections[i]
			break
		}
	}
	if global == nil || global.Result == nil {
		reason := "no global category configured"
		if global != nil {
			reason = global.Err
		}
		b.WriteString(fmt.Sprintf("Global market could not be projected: %s\n\n", reason))
		return
	}

	result := global.Result
	b.WriteString(fmt.Sprintf("Projected Market Size (%d): $%s billion USD\n", set.TargetYear, money(result.Blended)))
	for _, method := range domain.Methods() {
		if estimate := result.Estimate(method); estimate != nil {
			b.WriteString(fmt.Sprintf("  - %-22s: $%s billion\n", methodLabel(method), money(*estimate)))
		} else {
			b.WriteString(fmt.Sprintf("  - %-22s: failed (%s)\n", methodLabel(method), result.Failures[method]))
		}
	}
	b.WriteString(fmt.Sprintf("  - Standard Deviation    : $%s billion\n", money(result.StdDev)))
	b.WriteString(fmt.Sprintf("  - Range (+-1 sd)        : $%s - $%s billion\n", money(result.Band.Low), money(result.Band.High)))
	b.WriteString(fmt.Sprintf("  - Confidence            : %s\n", global.Confidence))
	b.WriteString("\n")
}

func writeKindSection(b *strings.Builder, set domain.ProjectionSet, kind domain.CategoryKind, title, subRule, valueFormat string) {
	b.WriteString(title + "\n")
	b.WriteString(subRule + "\n")

	total := decimal.Zero
	for _, projection := range set.Projections {
		if projection.Category.Kind != kind {
			continue
		}
		if projection.Result == nil {
			b.WriteString(fmt.Sprintf("%-25s: failed (%s)\n", projection.Category.DisplayName, projection.Err))
			continue
		}

		line := fmt.Sprintf("%-25s: "+valueFormat, projection.Category.DisplayName, money(projection.Result.Blended))
		if projection.Share != nil {
			line += fmt.Sprintf(" (%5s%%)", percent(*projection.Share))
		}
		if projection.HistoricalCAGR != nil {
			line += fmt.Sprintf("  [hist. CAGR %s%%]", percent(*projection.HistoricalCAGR))
		}
		b.WriteString(line + "\n")
		total = total.Add(decimal.NewFromFloat(projection.Result.Blended))
	}

	b.WriteString(fmt.Sprintf("\nTotal: $%s billion\n\n", total.Round(2).StringFixed(2)))
}

func writeInstallationsSection(b *strings.Builder, set domain.ProjectionSet, subRule string) {
	b.WriteString(fmt.Sprintf("ROBOT INSTALLATIONS (%d)\n", set.TargetYear))
	b.WriteString(subRule + "\n")

	for _, projection := range set.Projections {
		if projection.Category.Kind != domain.CategoryKind_Installations {
			continue
		}
		if projection.Result == nil {
			b.WriteString(fmt.Sprintf("%-25s: failed (%s)\n", projection.Category.DisplayName, projection.Err))
			continue
		}
		line := fmt.Sprintf("%-25s: %8s thousand units", projection.Category.DisplayName, units(projection.Result.Blended))
		if projection.Share != nil {
			line += fmt.Sprintf(" (%5s%%)", percent(*projection.Share))
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
}

// writeKeyInsights derives headline observations from the projected values:
// China's share of the global market, the largest and fastest-growing
// segments, and the global projection itself. Insights whose inputs failed
// are omitted rather than reported with placeholder numbers.
func writeKeyInsights(b *strings.Builder, set domain.ProjectionSet, subRule string) {
	insights := []string{}

	var global *domain.CategoryProjection
	for i := range set.Projections {
		if set.Projections[i].Category.Kind == domain.CategoryKind_Global {
			global = &set.Projections[i]
			break
		}
	}

	if china := set.Get("china"); china != nil && china.Share != nil {
		insights = append(insights, fmt.Sprintf(
			"China is projected to account for %s%% of the global robotics market",
			percent(*china.Share)))
	}

	var largest, fastest *domain.CategoryProjection
	for i := range set.Projections {
		projection := &set.Projections[i]
		if projection.Category.Kind != domain.CategoryKind_Segment || projection.Result == nil {
			continue
		}
		if largest == nil || projection.Result.Blended > largest.Result.Blended {
			largest = projection
		}
		if projection.HistoricalCAGR != nil &&
			(fastest == nil || *projection.HistoricalCAGR > *fastest.HistoricalCAGR) {
			fastest = projection
		}
	}
	if largest != nil {
		insights = append(insights, fmt.Sprintf(
			"%s remains the largest segment at $%s billion",
			largest.Category.DisplayName, money(largest.Result.Blended)))
	}
	if fastest != nil {
		insights = append(insights, fmt.Sprintf(
			"%s shows the fastest historical growth at %s%% per year",
			fastest.Category.DisplayName, percent(*fastest.HistoricalCAGR)))
	}
	if global != nil && global.Result != nil {
		insights = append(insights, fmt.Sprintf(
			"Global market expected to reach $%s billion by %d",
			money(global.Result.Blended), set.TargetYear))
	}

	if len(insights) == 0 {
		return
	}
	b.WriteString("KEY INSIGHTS\n")
	b.WriteString(subRule + "\n")
	for i, insight := range insights {
		b.WriteString(fmt.Sprintf("%d. %s\n", i+1, insight))
	}
	b.WriteString("\n")
}

func writeFailures(b *strings.Builder, set domain.ProjectionSet, subRule string) {
	failed := set.FailedCategories()
	if len(failed) == 0 {
		return
	}
	b.WriteString("FAILED CATEGORIES\n")
	b.WriteString(subRule + "\n")
	for _, id := range failed {
		projection := set.Get(id)
		b.WriteString(fmt.Sprintf("%-25s: %s\n", id, projection.Err))
	}
	b.WriteString("\n")
}

func methodLabel(m domain.Method) string {
	switch m {
	case domain.Method_Linear:
		return "Linear Model"
	case domain.Method_Polynomial:
		return "Polynomial Model"
	case domain.Method_ExponentialSmoothing:
		return "Exponential Smoothing"
	case domain.Method_CAGR:
		return "CAGR Projection"
	}
	return string(m)
}

func money(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

func units(v float64) string {
	return decimal.NewFromFloat(v).Round(1).StringFixed(1)
}

func percent(v float64) string {
	return decimal.NewFromFloat(v * 100).Round(2).StringFixed(2)
}
