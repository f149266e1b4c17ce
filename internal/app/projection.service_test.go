package app

import (
	"context"
	"errors"
	"testing"

	"roboforecast/internal"
	"roboforecast/internal/domain"
	"roboforecast/internal/repository"

	"github.com/stretchr/testify/require"
)

func defaultRunConfig() RunConfig {
	return RunConfig{
		TargetYear: 2026,
		Weights:    internal.DefaultWeights(),
		Alpha:      0.3,
	}
}

func loadDefaultData(t *testing.T) map[string]domain.HistoricalSeries {
	t.Helper()
	series, err := repository.NewMarketDataRepository(t.TempDir()).Load()
	require.NoError(t, err)
	return series
}

func TestRunProjections(t *testing.T) {
	handler := ProjectionHandler{}

	t.Run("projects every category in declared order", func(t *testing.T) {
		categories := repository.DefaultCategories()
		set, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series:     loadDefaultData(t),
			Categories: categories,
			Config:     defaultRunConfig(),
		})
		require.NoError(t, err)

		require.Len(t, set.Projections, len(categories))
		for i, projection := range set.Projections {
			require.Equal(t, categories[i].ID, projection.Category.ID)
			require.NotNil(t, projection.Result, "category %s should project", projection.Category.ID)
			require.Empty(t, projection.Err)
		}
		require.Empty(t, set.FailedCategories())
		require.Equal(t, 2026, set.TargetYear)
	})

	t.Run("region share equals region blended over global blended", func(t *testing.T) {
		set, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series:     loadDefaultData(t),
			Categories: repository.DefaultCategories(),
			Config:     defaultRunConfig(),
		})
		require.NoError(t, err)

		global := set.Get(repository.GlobalMarketCategory)
		require.NotNil(t, global)
		require.Nil(t, global.Share)

		for _, regionID := range []string{"china", "japan", "south_korea", "germany", "usa", "rest_of_world"} {
			region := set.Get(regionID)
			require.NotNil(t, region, regionID)
			require.NotNil(t, region.Share, regionID)
			require.Equal(t, region.Result.Blended/global.Result.Blended, *region.Share, regionID)
		}

		globalInstalls := set.Get(repository.GlobalInstallsCategory)
		chinaInstalls := set.Get("china_installations")
		require.NotNil(t, chinaInstalls.Share)
		require.Equal(t, chinaInstalls.Result.Blended/globalInstalls.Result.Blended, *chinaInstalls.Share)
	})

	t.Run("reports historical growth alongside projections", func(t *testing.T) {
		set, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series:     loadDefaultData(t),
			Categories: repository.DefaultCategories(),
			Config:     defaultRunConfig(),
		})
		require.NoError(t, err)

		china := set.Get("china")
		require.NotNil(t, china.HistoricalCAGR)
		// 6.8 -> 29.8 over nine years is roughly 17.8% annualized
		require.InDelta(t, 0.178, *china.HistoricalCAGR, 0.005)
	})

	t.Run("confidence reflects method disagreement", func(t *testing.T) {
		points := []domain.Observation{}
		for i := 0; i < 10; i++ {
			points = append(points, domain.Observation{Year: 2015 + i, Value: 5})
		}
		flat, err := domain.NewHistoricalSeries("flat", points)
		require.NoError(t, err)

		set, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series: map[string]domain.HistoricalSeries{"flat": *flat},
			Categories: []domain.CategoryDescriptor{
				{ID: "flat", DisplayName: "Flat", Kind: domain.CategoryKind_Global},
			},
			Config: defaultRunConfig(),
		})
		require.NoError(t, err)
		require.Equal(t, domain.Confidence_High, set.Get("flat").Confidence)
	})

	t.Run("a failed category does not abort the run", func(t *testing.T) {
		badSeries, err := domain.NewHistoricalSeries("bad", []domain.Observation{{Year: 2024, Value: 1}})
		require.NoError(t, err)
		goodSeries, err := domain.NewHistoricalSeries("good", []domain.Observation{
			{Year: 2020, Value: 10},
			{Year: 2021, Value: 12},
			{Year: 2022, Value: 14},
			{Year: 2023, Value: 16},
			{Year: 2024, Value: 18},
		})
		require.NoError(t, err)

		set, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series: map[string]domain.HistoricalSeries{
				"bad":  *badSeries,
				"good": *goodSeries,
			},
			Categories: []domain.CategoryDescriptor{
				{ID: "bad", DisplayName: "Bad", Kind: domain.CategoryKind_Global},
				{ID: "good", DisplayName: "Good", Kind: domain.CategoryKind_Region, ShareBase: "bad"},
			},
			Config: defaultRunConfig(),
		})
		require.NoError(t, err)

		require.Equal(t, []string{"bad"}, set.FailedCategories())
		bad := set.Get("bad")
		require.Nil(t, bad.Result)
		require.Contains(t, bad.Err, "no viable projection method")

		// the share against the failed base is an explicit derived-metric
		// failure, not a silent zero
		good := set.Get("good")
		require.NotNil(t, good.Result)
		require.Nil(t, good.Share)
		require.Contains(t, good.ShareErr, "cannot derive")
	})

	t.Run("missing series is recorded against the category", func(t *testing.T) {
		set, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series: map[string]domain.HistoricalSeries{},
			Categories: []domain.CategoryDescriptor{
				{ID: "ghost", DisplayName: "Ghost", Kind: domain.CategoryKind_Region},
			},
			Config: defaultRunConfig(),
		})
		require.NoError(t, err)
		require.Equal(t, []string{"ghost"}, set.FailedCategories())
	})

	t.Run("malformed weights are fatal", func(t *testing.T) {
		cfg := defaultRunConfig()
		cfg.Weights = internal.Weights{domain.Method_Linear: 1}

		_, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series:     loadDefaultData(t),
			Categories: repository.DefaultCategories(),
			Config:     cfg,
		})
		require.Error(t, err)
		require.True(t, errors.As(err, &internal.InvalidWeightError{}))
	})

	t.Run("target year must be after the observed window", func(t *testing.T) {
		cfg := defaultRunConfig()
		cfg.TargetYear = 2024

		_, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series:     loadDefaultData(t),
			Categories: repository.DefaultCategories(),
			Config:     cfg,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "target year")
	})

	t.Run("smoothing factor must be in range", func(t *testing.T) {
		cfg := defaultRunConfig()
		cfg.Alpha = 0

		_, err := handler.RunProjections(context.Background(), RunProjectionsInput{
			Series:     loadDefaultData(t),
			Categories: repository.DefaultCategories(),
			Config:     cfg,
		})
		require.Error(t, err)
		require.Contains(t, err.Error(), "smoothing factor")
	})

	t.Run("cancellation is honored between categories", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := handler.RunProjections(ctx, RunProjectionsInput{
			Series:     loadDefaultData(t),
			Categories: repository.DefaultCategories(),
			Config:     defaultRunConfig(),
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}
