package repository

import (
	"os"
	"path/filepath"
	"testing"

	"roboforecast/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMarketDataRepository_Load(t *testing.T) {
	t.Run("falls back to the embedded dataset", func(t *testing.T) {
		repo := NewMarketDataRepository(t.TempDir())

		series, err := repo.Load()
		require.NoError(t, err)
		require.Len(t, series, 15)

		global, ok := series[GlobalMarketCategory]
		require.True(t, ok)
		require.Equal(t, 10, global.Len())
		require.Equal(t, domain.Observation{Year: 2015, Value: 24.8}, global.First())
		require.Equal(t, domain.Observation{Year: 2024, Value: 70.5}, global.Last())

		china := series["china"]
		require.Equal(t, 29.8, china.Last().Value)

		installs := series[GlobalInstallsCategory]
		require.Equal(t, 680.0, installs.Last().Value)
	})

	t.Run("seed then load round-trips", func(t *testing.T) {
		dir := t.TempDir()
		repo := NewMarketDataRepository(dir)

		require.NoError(t, repo.Seed())
		for _, file := range []string{GlobalMarketDataFile, RegionalMarketDataFile, InstallationsDataFile} {
			_, err := os.Stat(filepath.Join(dir, file))
			require.NoError(t, err)
		}

		fromFiles, err := repo.Load()
		require.NoError(t, err)
		fromDefaults, err := NewMarketDataRepository(t.TempDir()).Load()
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(fromDefaults, fromFiles))
	})

	t.Run("surfaces a malformed file", func(t *testing.T) {
		dir := t.TempDir()
		err := os.WriteFile(filepath.Join(dir, GlobalMarketDataFile), []byte("not,a\nvalid csv"), 0o644)
		require.NoError(t, err)

		_, err = NewMarketDataRepository(dir).Load()
		require.Error(t, err)
	})
}

func TestDefaultCategories(t *testing.T) {
	categories := DefaultCategories()
	require.Len(t, categories, 15)

	require.Equal(t, GlobalMarketCategory, categories[0].ID)
	require.Equal(t, domain.CategoryKind_Global, categories[0].Kind)
	require.Empty(t, categories[0].ShareBase)

	// kind-major declared order: segments, then regions, then installations
	kinds := []domain.CategoryKind{}
	for _, category := range categories {
		if len(kinds) == 0 || kinds[len(kinds)-1] != category.Kind {
			kinds = append(kinds, category.Kind)
		}
	}
	require.Equal(t, []domain.CategoryKind{
		domain.CategoryKind_Global,
		domain.CategoryKind_Segment,
		domain.CategoryKind_Region,
		domain.CategoryKind_Installations,
	}, kinds)

	for _, category := range categories {
		if category.Kind == domain.CategoryKind_Region || category.Kind == domain.CategoryKind_Segment {
			require.Equal(t, GlobalMarketCategory, category.ShareBase, category.ID)
		}
	}
}
