package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"furncli/pkg/contracts/domain"
)

func TestValidate_CleanDataset(t *testing.T) {
	ds := &domain.Dataset{Records: []domain.ProductRecord{
		rawRecord("Sofa", "$300.00", "$199.99", "1,200", nil),
		rawRecord("Chair", "", "$89.50", "36", strPtr("Free shipping")),
	}}
	require.NoError(t, NewCleaner(nil).Clean(ds))

	diags := Validate(ds)
	require.Len(t, diags, 5)

	byColumn := make(map[string]domain.ColumnDiagnostics)
	for _, d := range diags {
		byColumn[d.Column] = d
	}

	assert.Zero(t, byColumn[domain.ColumnPrice].NullCount)
	assert.Zero(t, byColumn[domain.ColumnSold].NullCount)
	assert.Zero(t, byColumn[domain.ColumnTagText].NullCount)
	assert.Equal(t, 1, byColumn[domain.ColumnOriginalPrice].NullCount)

	assert.Equal(t, "float64", byColumn[domain.ColumnPrice].InferredType)
	assert.Equal(t, "int64", byColumn[domain.ColumnSold].InferredType)
	assert.Equal(t, "string", byColumn[domain.ColumnTagText].InferredType)
}

func TestValidate_SurfacesParseFailures(t *testing.T) {
	ds := &domain.Dataset{Records: []domain.ProductRecord{
		rawRecord("Sofa", "", "broken", "1", strPtr("Sale")),
		rawRecord("Chair", "", "$12.00", "2", strPtr("Sale")),
	}}
	require.NoError(t, NewCleaner(nil).Clean(ds))

	diags := Validate(ds)
	for _, d := range diags {
		if d.Column == domain.ColumnPrice {
			assert.Equal(t, 1, d.NullCount)
			assert.Equal(t, 1, d.ParseFailures)
		}
	}
}
