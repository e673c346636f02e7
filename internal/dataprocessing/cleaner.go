package dataprocessing

import (
	"log/slog"

	"furncli/pkg/contracts/domain"
)

// Cleaner imputes missing tags and normalizes the currency-formatted
// numeric columns of a loaded dataset.
type Cleaner struct {
	logger *slog.Logger
}

// NewCleaner creates a cleaner. A nil logger falls back to the
// default slog logger.
func NewCleaner(logger *slog.Logger) *Cleaner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cleaner{logger: logger}
}

// Clean mutates the dataset in place. Missing tagText values are
// replaced with the column mode; price, sold and originalPrice cells
// are parsed from their formatted text. Cells that fail to parse stay
// null and are counted in ParseFailures for the validator to surface.
// Running Clean again over cleaned records changes nothing.
func (c *Cleaner) Clean(ds *domain.Dataset) error {
	tags := make([]*string, len(ds.Records))
	for i := range ds.Records {
		tags[i] = ds.Records[i].TagText
	}

	mode, err := Mode(tags)
	if err != nil {
		return err
	}

	if ds.ParseFailures == nil {
		ds.ParseFailures = make(map[string]int)
	}

	imputed := 0
	for i := range ds.Records {
		r := &ds.Records[i]

		if r.TagText == nil {
			tag := mode
			r.TagText = &tag
			imputed++
		}

		// Already-parsed cells keep their values, which makes a
		// second Clean pass a no-op.
		if r.Price == nil && r.RawPrice != "" {
			if v, ok := ParseCurrency(r.RawPrice); ok {
				r.Price = &v
			} else {
				c.reportFailure(ds, domain.ColumnPrice, i, r.RawPrice)
			}
		}
		if r.Price == nil && r.RawPrice == "" {
			c.reportFailure(ds, domain.ColumnPrice, i, r.RawPrice)
		}

		if r.Sold == nil && r.RawSold != "" {
			if v, ok := ParseCount(r.RawSold); ok {
				r.Sold = &v
			} else {
				c.reportFailure(ds, domain.ColumnSold, i, r.RawSold)
			}
		}
		if r.Sold == nil && r.RawSold == "" {
			c.reportFailure(ds, domain.ColumnSold, i, r.RawSold)
		}

		// originalPrice is legitimately sparse, so empty cells are
		// left null without counting a failure.
		if r.OriginalPrice == nil && r.RawOriginalPrice != "" {
			if v, ok := ParseCurrency(r.RawOriginalPrice); ok {
				r.OriginalPrice = &v
			} else {
				c.reportFailure(ds, domain.ColumnOriginalPrice, i, r.RawOriginalPrice)
			}
		}
	}

	ds.Cleaned = true

	c.logger.Info("Dataset cleaned",
		slog.Int("record_count", len(ds.Records)),
		slog.String("tag_mode", mode),
		slog.Int("tags_imputed", imputed),
		slog.Int("price_failures", ds.ParseFailures[domain.ColumnPrice]),
		slog.Int("sold_failures", ds.ParseFailures[domain.ColumnSold]))

	return nil
}

// reportFailure logs and counts one unparseable cell. Failures in
// price or sold indicate malformed source data; they are surfaced by
// the validator rather than dropped.
func (c *Cleaner) reportFailure(ds *domain.Dataset, column string, row int, raw string) {
	// Counting each cell once keeps repeated Clean runs idempotent.
	if ds.Cleaned {
		return
	}
	ds.ParseFailures[column]++
	c.logger.Warn("Unparseable numeric cell",
		slog.String("column", column),
		slog.Int("row", row),
		slog.String("raw", raw))
}
