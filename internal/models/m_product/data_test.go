package m_product

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataScansRowColumns(t *testing.T) {
	now := time.Now().UTC()

	row, err := spanner.NewRow(
		[]string{SKU, Name, Price, Quantity, Description, CategoryID, SupplierID, CreatedOn, UpdatedAt},
		[]interface{}{"AB1234", "Widget", 19.99, int64(10), "desc", int64(1), int64(1), now, now},
	)
	require.NoError(t, err)

	var data Data
	require.NoError(t, row.ToStruct(&data))

	assert.Equal(t, "AB1234", data.SKU)
	assert.Equal(t, "Widget", data.Name)
	assert.Equal(t, 19.99, data.Price)
	assert.Equal(t, int64(10), data.Quantity)
	assert.Equal(t, int64(1), data.CategoryID)
	assert.Equal(t, now, data.CreatedOn)
}
