package exporter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteExcelReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	require.NoError(t, WriteExcelReport(path, sampleReport(), cleanedSample()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, summarySheet)
	assert.Contains(t, sheets, dataSheet)
	assert.NotContains(t, sheets, "Sheet1")

	runID, err := f.GetCellValue(summarySheet, "B1")
	require.NoError(t, err)
	assert.Equal(t, sampleReport().RunID, runID)

	// Data sheet: header row plus one row per record.
	rows, err := f.GetRows(dataSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "productTitle", rows[0][0])
	assert.Equal(t, "Sofa", rows[1][0])
	assert.Equal(t, "Free shipping", rows[1][4])
}
