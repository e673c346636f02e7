package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furncli/pkg/contracts/domain"
)

func sampleReport() *domain.AnalysisReport {
	return &domain.AnalysisReport{
		RunID:       "f6b2c1d0-0000-0000-0000-000000000000",
		SourcePath:  "data/furniture.csv",
		RecordCount: 4,
		Diagnostics: []domain.ColumnDiagnostics{
			{Column: "price", InferredType: "float64", NullCount: 0, ParseFailures: 0},
			{Column: "tagText", InferredType: "string", NullCount: 0, ParseFailures: 0},
		},
		SoldByTag: []domain.TagMean{
			{Tag: "Free shipping", Count: 3, MeanSold: 620.5},
			{Tag: "+Shipping: $5.09", Count: 1, MeanSold: 14},
		},
		PriceStats: domain.Distribution{
			Column: "price", Count: 4, Mean: 108.62, StdDev: 73.1,
			Min: 25, Q25: 73.38, Median: 104.75, Q75: 140, Max: 199.99,
		},
		PriceSoldCorrelation: 0.8731,
		Regression: domain.RegressionSummary{
			Feature: "price", Intercept: 120.5, Slope: -0.42,
			TrainSize: 3, TestSize: 1, R2: 0.91, RMSE: 12.3, Seed: 42,
		},
	}
}

func TestWriteReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, sampleReport()))

	out := buf.String()

	// All report sections appear with their computed values.
	assert.Contains(t, out, "data/furniture.csv")
	assert.Contains(t, out, "Column diagnostics")
	assert.Contains(t, out, "Free shipping")
	assert.Contains(t, out, "620.50")
	assert.Contains(t, out, "Price distribution")
	assert.Contains(t, out, "199.99")
	assert.Contains(t, out, "0.8731")
	assert.Contains(t, out, "intercept: 120.5000")
	assert.Contains(t, out, "slope:     -0.420000")
	assert.Contains(t, out, "seed 42")
	assert.Contains(t, out, "0.9100")
}
