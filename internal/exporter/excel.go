package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"furncli/internal/errors"
	"furncli/pkg/contracts/domain"
)

const (
	summarySheet = "Summary"
	dataSheet    = "Cleaned Data"
)

// WriteExcelReport writes the report tables and the cleaned dataset
// to an Excel workbook with a summary sheet and a data sheet.
func WriteExcelReport(filePath string, report *domain.AnalysisReport, ds *domain.Dataset) error {
	slog.Info("Writing Excel report",
		slog.String("file_path", filePath),
		slog.Int("record_count", ds.Len()))

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewExportError(fmt.Sprintf("failed to create directory %s", dir), err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.NewExportError("failed to create summary sheet", err)
	}
	if _, err := f.NewSheet(dataSheet); err != nil {
		return errors.NewExportError("failed to create data sheet", err)
	}
	f.DeleteSheet("Sheet1")

	if err := writeSummarySheet(f, report); err != nil {
		return err
	}
	if err := writeDataSheet(f, ds); err != nil {
		return err
	}

	if err := f.SaveAs(filePath); err != nil {
		return errors.NewExportError(fmt.Sprintf("failed to save %s", filePath), err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, report *domain.AnalysisReport) error {
	rows := [][]interface{}{
		{"Run ID", report.RunID},
		{"Source", report.SourcePath},
		{"Records", report.RecordCount},
		{},
		{"Column", "Type", "Nulls", "Parse failures"},
	}
	for _, d := range report.Diagnostics {
		rows = append(rows, []interface{}{d.Column, d.InferredType, d.NullCount, d.ParseFailures})
	}

	rows = append(rows, []interface{}{}, []interface{}{"Tag", "Count", "Mean sold"})
	for _, m := range report.SoldByTag {
		rows = append(rows, []interface{}{m.Tag, m.Count, m.MeanSold})
	}

	s := report.PriceStats
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Price distribution"},
		[]interface{}{"count", s.Count},
		[]interface{}{"mean", s.Mean},
		[]interface{}{"std", s.StdDev},
		[]interface{}{"min", s.Min},
		[]interface{}{"25%", s.Q25},
		[]interface{}{"50%", s.Median},
		[]interface{}{"75%", s.Q75},
		[]interface{}{"max", s.Max},
		[]interface{}{},
		[]interface{}{"Correlation (price, sold)", report.PriceSoldCorrelation},
		[]interface{}{},
		[]interface{}{"Regression sold ~ price"},
		[]interface{}{"intercept", report.Regression.Intercept},
		[]interface{}{"slope", report.Regression.Slope},
		[]interface{}{"train size", report.Regression.TrainSize},
		[]interface{}{"test size", report.Regression.TestSize},
		[]interface{}{"seed", report.Regression.Seed},
		[]interface{}{"R2", report.Regression.R2},
		[]interface{}{"RMSE", report.Regression.RMSE},
	)

	return writeRows(f, summarySheet, rows)
}

func writeDataSheet(f *excelize.File, ds *domain.Dataset) error {
	rows := [][]interface{}{{
		domain.ColumnProductTitle,
		domain.ColumnOriginalPrice,
		domain.ColumnPrice,
		domain.ColumnSold,
		domain.ColumnTagText,
	}}

	for _, r := range ds.Records {
		row := []interface{}{r.ProductTitle, nil, nil, nil, nil}
		if r.OriginalPrice != nil {
			row[1] = *r.OriginalPrice
		}
		if r.Price != nil {
			row[2] = *r.Price
		}
		if r.Sold != nil {
			row[3] = *r.Sold
		}
		if r.TagText != nil {
			row[4] = *r.TagText
		}
		rows = append(rows, row)
	}

	return writeRows(f, dataSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if value == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return errors.NewExportError("invalid cell coordinates", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.NewExportError(fmt.Sprintf("failed to set cell %s", cell), err)
			}
		}
	}
	return nil
}
