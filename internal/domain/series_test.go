package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewHistoricalSeries(t *testing.T) {
	t.Run("valid series", func(t *testing.T) {
		series, err := NewHistoricalSeries("global_market_size", []Observation{
			{Year: 2022, Value: 55.3},
			{Year: 2023, Value: 63.2},
			{Year: 2024, Value: 70.5},
		})
		require.NoError(t, err)
		require.Equal(t, 3, series.Len())
		require.Equal(t, Observation{Year: 2022, Value: 55.3}, series.First())
		require.Equal(t, Observation{Year: 2024, Value: 70.5}, series.Last())
		require.Equal(t, []float64{55.3, 63.2, 70.5}, series.Values())
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := NewHistoricalSeries("empty", nil)
		require.Error(t, err)
	})

	t.Run("rejects unsorted years", func(t *testing.T) {
		_, err := NewHistoricalSeries("unsorted", []Observation{
			{Year: 2024, Value: 1},
			{Year: 2023, Value: 2},
		})
		require.Error(t, err)
	})

	t.Run("rejects duplicate years", func(t *testing.T) {
		_, err := NewHistoricalSeries("duplicate", []Observation{
			{Year: 2024, Value: 1},
			{Year: 2024, Value: 2},
		})
		require.Error(t, err)
	})
}
