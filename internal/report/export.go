package report

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/xuri/excelize/v2"
)

const xlsxSheetName = "Projections"

// WriteCSV writes the assembled rows as CSV, one row per category. Nil
// columns marshal as empty cells.
func WriteCSV(w io.Writer, rows []ProjectionRow) error {
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write projection csv: %w", err)
	}
	return nil
}

// WriteXLSX writes the assembled rows as a single-sheet workbook.
func WriteXLSX(w io.Writer, rows []ProjectionRow) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetIndex, err := f.NewSheet(xlsxSheetName)
	if err != nil {
		return err
	}
	f.SetActiveSheet(sheetIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{
		"category", "display_name", "kind", "target_year", "blended",
		"linear", "polynomial", "exponential_smoothing", "cagr",
		"std_deviation", "low_1sd", "high_1sd", "low_2sd", "high_2sd",
		"share_of_base", "historical_cagr", "confidence", "note",
	}
	for colIndex, header := range headers {
		if err := setCell(f, colIndex, 0, header); err != nil {
			return err
		}
	}

	for rowIndex, row := range rows {
		cells := []interface{}{
			row.Category, row.DisplayName, row.Kind, row.TargetYear,
			floatCell(row.Blended), floatCell(row.Linear),
			floatCell(row.Polynomial), floatCell(row.ExponentialSmoothing),
			floatCell(row.CAGR), floatCell(row.StdDeviation),
			floatCell(row.Low), floatCell(row.High),
			floatCell(row.WideLow), floatCell(row.WideHigh),
			floatCell(row.ShareOfBase), floatCell(row.HistoricalCAGR),
			row.Confidence, row.Note,
		}
		for colIndex, value := range cells {
			if value == nil {
				continue
			}
			if err := setCell(f, colIndex, rowIndex+1, value); err != nil {
				return err
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write projection workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cellRef, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return f.SetCellValue(xlsxSheetName, cellRef, value)
}

func floatCell(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}
