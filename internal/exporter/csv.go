package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"furncli/internal/errors"
	"furncli/pkg/contracts/domain"
)

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteCleanedCSV writes the cleaned dataset to a CSV file with the
// canonical header. Null cells are written as empty strings.
func WriteCleanedCSV(filePath string, ds *domain.Dataset, options WriteOptions) error {
	slog.Info("Writing cleaned dataset CSV",
		slog.String("file_path", filePath),
		slog.Int("record_count", ds.Len()))

	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewExportError(fmt.Sprintf("failed to create directory %s", dir), err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return errors.NewExportError(fmt.Sprintf("failed to create %s", filePath), err)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return errors.NewExportError("failed to write BOM", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(domain.Columns()); err != nil {
		return errors.NewExportError("failed to write header", err)
	}

	for _, r := range ds.Records {
		row := []string{
			r.ProductTitle,
			formatFloat(r.OriginalPrice),
			formatFloat(r.Price),
			formatInt(r.Sold),
			formatString(r.TagText),
		}
		if err := writer.Write(row); err != nil {
			return errors.NewExportError("failed to write record", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatInt(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func formatString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
