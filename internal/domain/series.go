package domain

import (
	"fmt"
)

// Observation is a single annual data point for one category.
type Observation struct {
	Year  int     `json:"year"`
	Value float64 `json:"value"`
}

// HistoricalSeries holds the ordered annual observations for one category.
// Years are strictly increasing. The series is treated as immutable once
// constructed - fitters and the orchestrator only read from it.
type HistoricalSeries struct {
	Category string
	Points   []Observation
}

func NewHistoricalSeries(category string, points []Observation) (*HistoricalSeries, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("series %s has no observations", category)
	}
	for i := 1; i < len(points); i++ {
		if points[i].Year <= points[i-1].Year {
			return nil, fmt.Errorf("series %s years must be strictly increasing, got %d after %d", category, points[i].Year, points[i-1].Year)
		}
	}
	return &HistoricalSeries{
		Category: category,
		Points:   points,
	}, nil
}

func (s HistoricalSeries) Len() int {
	return len(s.Points)
}

func (s HistoricalSeries) First() Observation {
	return s.Points[0]
}

func (s HistoricalSeries) Last() Observation {
	return s.Points[len(s.Points)-1]
}

func (s HistoricalSeries) YearsElapsed() int {
	return s.Last().Year - s.First().Year
}

func (s HistoricalSeries) Values() []float64 {
	values := make([]float64, 0, len(s.Points))
	for _, p := range s.Points {
		values = append(values, p.Value)
	}
	return values
}
