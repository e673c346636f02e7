package domain

// ColumnDiagnostics summarizes the post-clean state of one column.
type ColumnDiagnostics struct {
	Column        string `json:"column"`
	InferredType  string `json:"inferred_type"`
	NullCount     int    `json:"null_count"`
	ParseFailures int    `json:"parse_failures"`
}

// TagMean is the mean units sold for one tag group.
type TagMean struct {
	Tag      string  `json:"tag"`
	Count    int     `json:"count"`
	MeanSold float64 `json:"mean_sold"`
}

// Distribution holds descriptive statistics for one numeric column.
type Distribution struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q25    float64 `json:"q25"`
	Median float64 `json:"median"`
	Q75    float64 `json:"q75"`
	Max    float64 `json:"max"`
}

// RegressionSummary reports the fitted coefficients and the held-out
// evaluation metrics of the price-to-sold regression.
type RegressionSummary struct {
	Feature   string  `json:"feature"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	TrainSize int     `json:"train_size"`
	TestSize  int     `json:"test_size"`
	R2        float64 `json:"r2"`
	RMSE      float64 `json:"rmse"`
	Seed      int64   `json:"seed"`
}

// AnalysisReport is the full output of one pipeline run.
type AnalysisReport struct {
	RunID                string              `json:"run_id"`
	SourcePath           string              `json:"source_path"`
	RecordCount          int                 `json:"record_count"`
	Diagnostics          []ColumnDiagnostics `json:"diagnostics"`
	SoldByTag            []TagMean           `json:"sold_by_tag"`
	PriceStats           Distribution        `json:"price_stats"`
	PriceSoldCorrelation float64             `json:"price_sold_correlation"`
	Regression           RegressionSummary   `json:"regression"`
}
