package main

import (
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	"furncli/internal/config"
	"furncli/internal/exporter"
	"furncli/internal/infrastructure"
	"furncli/internal/pipeline"
)

func main() {
	configFile := flag.String("config", "", "optional yaml config file")
	input := flag.String("input", "", "input csv path (defaults to the configured dataset path)")
	reportDir := flag.String("out", "", "output directory for exported artifacts (defaults to configured report dir)")
	exportCSV := flag.Bool("export-csv", false, "also write the cleaned dataset as csv")
	exportExcel := flag.Bool("export-excel", false, "also write the report as an xlsx workbook")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	if *input == "" {
		*input = cfg.Paths.InputCSV
	}
	if *reportDir == "" {
		*reportDir = cfg.Paths.ReportDir
	}
	if *exportCSV {
		cfg.Export.CleanedCSV = true
	}
	if *exportExcel {
		cfg.Export.Excel = true
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	result, err := pipeline.NewRunner(cfg, logger).Run(*input)
	if err != nil {
		logger.Error("Analysis run failed",
			slog.String("input", *input),
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := exporter.WriteReport(os.Stdout, result.Report); err != nil {
		logger.Error("Failed to render report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.Export.CleanedCSV {
		path := filepath.Join(*reportDir, "cleaned_dataset.csv")
		opts := exporter.WriteOptions{BOMPrefix: cfg.Export.BOMPrefix}
		if err := exporter.WriteCleanedCSV(path, result.Dataset, opts); err != nil {
			logger.Error("Failed to export cleaned dataset",
				slog.String("path", path),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.Export.Excel {
		path := filepath.Join(*reportDir, "analysis_report.xlsx")
		if err := exporter.WriteExcelReport(path, result.Report, result.Dataset); err != nil {
			logger.Error("Failed to export Excel report",
				slog.String("path", path),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}
