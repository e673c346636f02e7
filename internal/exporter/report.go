package exporter

import (
	"fmt"
	"io"
	"text/tabwriter"

	"furncli/pkg/contracts/domain"
)

// WriteReport renders the analysis report in human-readable form.
func WriteReport(w io.Writer, report *domain.AnalysisReport) error {
	fmt.Fprintf(w, "E-commerce Furniture Dataset Analysis\n")
	fmt.Fprintf(w, "run %s — %s (%d records)\n\n", report.RunID, report.SourcePath, report.RecordCount)

	fmt.Fprintln(w, "Column diagnostics")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "column\ttype\tnulls\tparse failures")
	for _, d := range report.Diagnostics {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", d.Column, d.InferredType, d.NullCount, d.ParseFailures)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nMean units sold by tag")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "tag\tcount\tmean sold")
	for _, m := range report.SoldByTag {
		fmt.Fprintf(tw, "%s\t%d\t%.2f\n", m.Tag, m.Count, m.MeanSold)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := report.PriceStats
	fmt.Fprintln(w, "\nPrice distribution")
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "count\t%d\n", s.Count)
	fmt.Fprintf(tw, "mean\t%.2f\n", s.Mean)
	fmt.Fprintf(tw, "std\t%.2f\n", s.StdDev)
	fmt.Fprintf(tw, "min\t%.2f\n", s.Min)
	fmt.Fprintf(tw, "25%%\t%.2f\n", s.Q25)
	fmt.Fprintf(tw, "50%%\t%.2f\n", s.Median)
	fmt.Fprintf(tw, "75%%\t%.2f\n", s.Q75)
	fmt.Fprintf(tw, "max\t%.2f\n", s.Max)
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nPearson correlation (price, sold): %.4f\n", report.PriceSoldCorrelation)

	r := report.Regression
	fmt.Fprintln(w, "\nRegression: sold ~ price")
	fmt.Fprintf(w, "  intercept: %.4f\n", r.Intercept)
	fmt.Fprintf(w, "  slope:     %.6f\n", r.Slope)
	fmt.Fprintf(w, "  split:     %d train / %d test (seed %d)\n", r.TrainSize, r.TestSize, r.Seed)
	fmt.Fprintf(w, "  R²:        %.4f\n", r.R2)
	fmt.Fprintf(w, "  RMSE:      %.4f\n", r.RMSE)

	return nil
}
