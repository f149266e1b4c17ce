package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"roboforecast/cmd"
	"roboforecast/internal/app"
	"roboforecast/internal/logger"
	"roboforecast/internal/report"
	"roboforecast/internal/repository"

	"github.com/spf13/cobra"
)

var printReport bool

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Write the default historical dataset to the raw data directory",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		if err := handler.MarketDataRepository.Seed(); err != nil {
			return err
		}
		fmt.Printf("historical data written to %s\n", handler.Config.DataDir)
		return nil
	},
}

var projectionsCmd = &cobra.Command{
	Use:   "projections",
	Short: "Compute projections and export them",
	RunE: func(c *cobra.Command, args []string) error {
		return runPipeline(printReport)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline: seed data if missing, project, export, report",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		if _, err := os.Stat(filepath.Join(handler.Config.DataDir, repository.GlobalMarketDataFile)); os.IsNotExist(err) {
			if err := handler.MarketDataRepository.Seed(); err != nil {
				return err
			}
		}
		return runPipeline(true)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection API",
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		return handler.StartApi(handler.Config.Port)
	},
}

func runPipeline(withReport bool) error {
	handler, err := cmd.InitializeDependencies()
	if err != nil {
		return err
	}
	cfg := handler.Config

	runConfig, err := cfg.RunConfig()
	if err != nil {
		return err
	}
	series, err := handler.MarketDataRepository.Load()
	if err != nil {
		return err
	}

	ctx := context.WithValue(context.Background(), logger.ContextKey, logger.New())
	set, err := handler.ProjectionService.RunProjections(ctx, app.RunProjectionsInput{
		Series:     series,
		Categories: repository.DefaultCategories(),
		Config:     *runConfig,
	})
	if err != nil {
		return err
	}

	rows := report.Assemble(*set)

	processedDir := filepath.Join(cfg.OutputDir, "processed")
	if err := os.MkdirAll(processedDir, 0o755); err != nil {
		return err
	}
	csvPath := filepath.Join(processedDir, fmt.Sprintf("projections_%d.csv", set.TargetYear))
	if err := writeFile(csvPath, func(f *os.File) error { return report.WriteCSV(f, rows) }); err != nil {
		return err
	}
	xlsxPath := filepath.Join(processedDir, fmt.Sprintf("projections_%d.xlsx", set.TargetYear))
	if err := writeFile(xlsxPath, func(f *os.File) error { return report.WriteXLSX(f, rows) }); err != nil {
		return err
	}

	reportsDir := filepath.Join(cfg.OutputDir, "reports")
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return err
	}
	text := report.TextReport(*set)
	reportPath := filepath.Join(reportsDir, fmt.Sprintf("projection_report_%d.txt", set.TargetYear))
	if err := os.WriteFile(reportPath, []byte(text), 0o644); err != nil {
		return err
	}

	if withReport {
		fmt.Println(text)
	}
	fmt.Printf("projections saved to %s and %s\n", csvPath, xlsxPath)
	fmt.Printf("report saved to %s\n", reportPath)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
