// Package pipeline runs the analysis stages in order: load, clean,
// validate, analyze, model. Data flows strictly forward; the pipeline
// owns the dataset for the duration of the run.
package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"furncli/internal/analytics"
	"furncli/internal/config"
	"furncli/internal/dataprocessing"
	"furncli/internal/regression"
	"furncli/pkg/contracts/domain"
)

// Runner executes one batch analysis run.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner creates a pipeline runner. A nil logger falls back to the
// default slog logger.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// Result bundles the report with the cleaned dataset so the caller
// can export either.
type Result struct {
	Report  *domain.AnalysisReport
	Dataset *domain.Dataset
	Model   *regression.Model
}

// Run executes the full pipeline over the configured input file. Any
// returned error is fatal for the run.
func (r *Runner) Run(inputPath string) (*Result, error) {
	runID := uuid.NewString()
	logger := r.logger.With(slog.String("run_id", runID))

	logger.Info("Starting analysis run", slog.String("input", inputPath))

	ds, err := dataprocessing.LoadCSV(inputPath)
	if err != nil {
		return nil, err
	}
	logger.Info("Dataset loaded", slog.Int("record_count", ds.Len()))

	cleaner := dataprocessing.NewCleaner(logger)
	if err := cleaner.Clean(ds); err != nil {
		return nil, err
	}

	diagnostics := dataprocessing.Validate(ds)

	soldByTag, err := analytics.MeanSoldByTag(ds)
	if err != nil {
		return nil, err
	}

	priceStats, err := analytics.PriceDistribution(ds)
	if err != nil {
		return nil, err
	}

	correlation, err := analytics.PearsonCorrelation(ds)
	if err != nil {
		return nil, err
	}

	model, regSummary, err := regression.FitAndEvaluate(ds, regression.Options{
		TestFraction: r.cfg.Analysis.TestFraction,
		Seed:         r.cfg.Analysis.Seed,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Analysis run complete",
		slog.Int("tag_groups", len(soldByTag)),
		slog.Float64("correlation", correlation),
		slog.Float64("r2", regSummary.R2),
		slog.Float64("rmse", regSummary.RMSE))

	report := &domain.AnalysisReport{
		RunID:                runID,
		SourcePath:           inputPath,
		RecordCount:          ds.Len(),
		Diagnostics:          diagnostics,
		SoldByTag:            soldByTag,
		PriceStats:           priceStats,
		PriceSoldCorrelation: correlation,
		Regression:           regSummary,
	}

	return &Result{Report: report, Dataset: ds, Model: model}, nil
}
