// Package exporter renders the analysis report and writes the
// optional file artifacts: the human-readable console report, the
// cleaned dataset as CSV and the report tables as an Excel workbook.
package exporter
