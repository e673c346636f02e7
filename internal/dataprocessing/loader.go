package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"furncli/internal/errors"
	"furncli/pkg/contracts/domain"
)

// LoadCSV reads the furniture dataset CSV and returns one record per
// row with all cells kept as raw text. The header row is mapped by
// column name, so column order in the file does not matter.
func LoadCSV(filePath string) (*domain.Dataset, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("cannot open dataset file %s", filePath), err)
	}
	defer f.Close()

	return loadCSV(f, filePath)
}

func loadCSV(r io.Reader, filePath string) (*domain.Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.NewLoadError(fmt.Sprintf("cannot read header of %s", filePath), err)
	}

	columnMap := make(map[string]int)
	for i, name := range header {
		// Strip a UTF-8 BOM on the first header cell if present.
		name = strings.TrimPrefix(strings.TrimSpace(name), "\uFEFF")
		columnMap[name] = i
	}

	for _, col := range domain.Columns() {
		if _, exists := columnMap[col]; !exists {
			return nil, errors.NewLoadError(fmt.Sprintf("missing required column %q in %s", col, filePath), nil)
		}
	}

	cell := func(row []string, col string) string {
		idx := columnMap[col]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	ds := &domain.Dataset{ParseFailures: make(map[string]int)}
	rowNum := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.NewLoadError(fmt.Sprintf("malformed CSV row %d in %s", rowNum+1, filePath), err)
		}
		rowNum++

		record := domain.ProductRecord{
			ProductTitle:     cell(row, domain.ColumnProductTitle),
			RawOriginalPrice: cell(row, domain.ColumnOriginalPrice),
			RawPrice:         cell(row, domain.ColumnPrice),
			RawSold:          cell(row, domain.ColumnSold),
		}
		if tag := cell(row, domain.ColumnTagText); tag != "" {
			record.TagText = &tag
		}
		ds.Records = append(ds.Records, record)
	}

	slog.Debug("Dataset loaded",
		slog.String("file_path", filePath),
		slog.Int("record_count", len(ds.Records)))

	return ds, nil
}
