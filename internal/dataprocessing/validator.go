package dataprocessing

import (
	"log/slog"

	"furncli/pkg/contracts/domain"
)

// Validate reports the post-clean state of every column: remaining
// null counts, inferred types and the parse failures recorded during
// cleaning. It never fails; the diagnostics travel with the report so
// the caller decides what to do with them.
func Validate(ds *domain.Dataset) []domain.ColumnDiagnostics {
	nulls := map[string]int{}
	for _, r := range ds.Records {
		if r.OriginalPrice == nil {
			nulls[domain.ColumnOriginalPrice]++
		}
		if r.Price == nil {
			nulls[domain.ColumnPrice]++
		}
		if r.Sold == nil {
			nulls[domain.ColumnSold]++
		}
		if r.TagText == nil {
			nulls[domain.ColumnTagText]++
		}
	}

	types := map[string]string{
		domain.ColumnProductTitle:  "string",
		domain.ColumnOriginalPrice: "float64",
		domain.ColumnPrice:         "float64",
		domain.ColumnSold:          "int64",
		domain.ColumnTagText:       "string",
	}

	diags := make([]domain.ColumnDiagnostics, 0, len(domain.Columns()))
	for _, col := range domain.Columns() {
		diag := domain.ColumnDiagnostics{
			Column:        col,
			InferredType:  types[col],
			NullCount:     nulls[col],
			ParseFailures: ds.ParseFailures[col],
		}
		diags = append(diags, diag)

		if diag.NullCount > 0 && col != domain.ColumnOriginalPrice {
			slog.Warn("Column has remaining nulls after cleaning",
				slog.String("column", col),
				slog.Int("null_count", diag.NullCount),
				slog.Int("parse_failures", diag.ParseFailures))
		}
	}

	return diags
}
