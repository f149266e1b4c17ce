package repository

import (
	"fmt"
	"os"
	"path/filepath"

	"roboforecast/internal/domain"

	"github.com/gocarina/gocsv"
)

const (
	GlobalMarketDataFile    = "global_market_data.csv"
	RegionalMarketDataFile  = "regional_market_data.csv"
	InstallationsDataFile   = "installations_data.csv"
	GlobalMarketCategory    = "global_market_size"
	GlobalInstallsCategory  = "global_installations"
)

type globalMarketRow struct {
	Year               int     `csv:"year"`
	GlobalMarketSize   float64 `csv:"global_market_size"`
	IndustrialRobots   float64 `csv:"industrial_robots"`
	ServiceRobots      float64 `csv:"service_robots"`
	MedicalRobots      float64 `csv:"medical_robots"`
	AgriculturalRobots float64 `csv:"agricultural_robots"`
}

type regionalMarketRow struct {
	Year        int     `csv:"year"`
	China       float64 `csv:"china"`
	Japan       float64 `csv:"japan"`
	SouthKorea  float64 `csv:"south_korea"`
	Germany     float64 `csv:"germany"`
	USA         float64 `csv:"usa"`
	RestOfWorld float64 `csv:"rest_of_world"`
}

type installationsRow struct {
	Year                    int     `csv:"year"`
	GlobalInstallations     float64 `csv:"global_installations"`
	ChinaInstallations      float64 `csv:"china_installations"`
	IndustrialInstallations float64 `csv:"industrial_installations"`
	ServiceInstallations    float64 `csv:"service_installations"`
}

// MarketDataRepository loads the three historical tables from CSV files under
// DataDir, falling back to the embedded default dataset (2015-2024 estimates
// based on IFR figures) when a file is absent.
type MarketDataRepository struct {
	DataDir string
}

func NewMarketDataRepository(dataDir string) MarketDataRepository {
	return MarketDataRepository{DataDir: dataDir}
}

// Load returns one HistoricalSeries per category, keyed by category id.
func (r MarketDataRepository) Load() (map[string]domain.HistoricalSeries, error) {
	globalRows, err := loadRows(filepath.Join(r.DataDir, GlobalMarketDataFile), defaultGlobalRows)
	if err != nil {
		return nil, err
	}
	regionalRows, err := loadRows(filepath.Join(r.DataDir, RegionalMarketDataFile), defaultRegionalRows)
	if err != nil {
		return nil, err
	}
	installRows, err := loadRows(filepath.Join(r.DataDir, InstallationsDataFile), defaultInstallationsRows)
	if err != nil {
		return nil, err
	}

	series := map[string]domain.HistoricalSeries{}
	add := func(category string, points []domain.Observation) error {
		s, err := domain.NewHistoricalSeries(category, points)
		if err != nil {
			return err
		}
		series[category] = *s
		return nil
	}

	columns := []struct {
		category string
		points   []domain.Observation
	}{
		{GlobalMarketCategory, pick(globalRows, func(row globalMarketRow) (int, float64) { return row.Year, row.GlobalMarketSize })},
		{"industrial_robots", pick(globalRows, func(row globalMarketRow) (int, float64) { return row.Year, row.IndustrialRobots })},
		{"service_robots", pick(globalRows, func(row globalMarketRow) (int, float64) { return row.Year, row.ServiceRobots })},
		{"medical_robots", pick(globalRows, func(row globalMarketRow) (int, float64) { return row.Year, row.MedicalRobots })},
		{"agricultural_robots", pick(globalRows, func(row globalMarketRow) (int, float64) { return row.Year, row.AgriculturalRobots })},
		{"china", pick(regionalRows, func(row regionalMarketRow) (int, float64) { return row.Year, row.China })},
		{"japan", pick(regionalRows, func(row regionalMarketRow) (int, float64) { return row.Year, row.Japan })},
		{"south_korea", pick(regionalRows, func(row regionalMarketRow) (int, float64) { return row.Year, row.SouthKorea })},
		{"germany", pick(regionalRows, func(row regionalMarketRow) (int, float64) { return row.Year, row.Germany })},
		{"usa", pick(regionalRows, func(row regionalMarketRow) (int, float64) { return row.Year, row.USA })},
		{"rest_of_world", pick(regionalRows, func(row regionalMarketRow) (int, float64) { return row.Year, row.RestOfWorld })},
		{GlobalInstallsCategory, pick(installRows, func(row installationsRow) (int, float64) { return row.Year, row.GlobalInstallations })},
		{"china_installations", pick(installRows, func(row installationsRow) (int, float64) { return row.Year, row.ChinaInstallations })},
		{"industrial_installations", pick(installRows, func(row installationsRow) (int, float64) { return row.Year, row.IndustrialInstallations })},
		{"service_installations", pick(installRows, func(row installationsRow) (int, float64) { return row.Year, row.ServiceInstallations })},
	}
	for _, column := range columns {
		if err := add(column.category, column.points); err != nil {
			return nil, fmt.Errorf("failed to load series: %w", err)
		}
	}

	return series, nil
}

// Seed writes the embedded default dataset to the raw CSV files.
func (r MarketDataRepository) Seed() error {
	if err := os.MkdirAll(r.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	if err := writeRows(filepath.Join(r.DataDir, GlobalMarketDataFile), defaultGlobalRows); err != nil {
		return err
	}
	if err := writeRows(filepath.Join(r.DataDir, RegionalMarketDataFile), defaultRegionalRows); err != nil {
		return err
	}
	return writeRows(filepath.Join(r.DataDir, InstallationsDataFile), defaultInstallationsRows)
}

// DefaultCategories is the ordered category list driving a projection run:
// global first, then segments, regions and installation counts in report
// order. The order is load-bearing for output determinism.
func DefaultCategories() []domain.CategoryDescriptor {
	return []domain.CategoryDescriptor{
		{ID: GlobalMarketCategory, DisplayName: "Global Market Size", Kind: domain.CategoryKind_Global},
		{ID: "industrial_robots", DisplayName: "Industrial Robots", Kind: domain.CategoryKind_Segment, ShareBase: GlobalMarketCategory},
		{ID: "service_robots", DisplayName: "Service Robots", Kind: domain.CategoryKind_Segment, ShareBase: GlobalMarketCategory},
		{ID: "medical_robots", DisplayName: "Medical Robots", Kind: domain.CategoryKind_Segment, ShareBase: GlobalMarketCategory},
		{ID: "agricultural_robots", DisplayName: "Agricultural Robots", Kind: domain.CategoryKind_Segment, ShareBase: GlobalMarketCategory},
		{ID: "china", DisplayName: "China", Kind: domain.CategoryKind_Region, ShareBase: GlobalMarketCategory},
		{ID: "japan", DisplayName: "Japan", Kind: domain.CategoryKind_Region, ShareBase: GlobalMarketCategory},
		{ID: "south_korea", DisplayName: "South Korea", Kind: domain.CategoryKind_Region, ShareBase: GlobalMarketCategory},
		{ID: "germany", DisplayName: "Germany", Kind: domain.CategoryKind_Region, ShareBase: GlobalMarketCategory},
		{ID: "usa", DisplayName: "United States", Kind: domain.CategoryKind_Region, ShareBase: GlobalMarketCategory},
		{ID: "rest_of_world", DisplayName: "Rest of World", Kind: domain.CategoryKind_Region, ShareBase: GlobalMarketCategory},
		{ID: GlobalInstallsCategory, DisplayName: "Global Installations", Kind: domain.CategoryKind_Installations},
		{ID: "china_installations", DisplayName: "China Installations", Kind: domain.CategoryKind_Installations, ShareBase: GlobalInstallsCategory},
		{ID: "industrial_installations", DisplayName: "Industrial Installations", Kind: domain.CategoryKind_Installations, ShareBase: GlobalInstallsCategory},
		{ID: "service_installations", DisplayName: "Service Installations", Kind: domain.CategoryKind_Installations, ShareBase: GlobalInstallsCategory},
	}
}

func loadRows[T any](path string, fallback []T) ([]T, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return fallback, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []T{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

func writeRows[T any](path string, rows []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.Marshal(&rows, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func pick[T any](rows []T, get func(T) (int, float64)) []domain.Observation {
	points := make([]domain.Observation, 0, len(rows))
	for _, row := range rows {
		year, value := get(row)
		points = append(points, domain.Observation{Year: year, Value: value})
	}
	return points
}
