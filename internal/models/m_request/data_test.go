package m_request

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The repository reads rows back through Row.ToStruct, which matches on the
// spanner field tags, not the Go field names.
func TestDataScansRowColumns(t *testing.T) {
	now := time.Now().UTC()

	row, err := spanner.NewRow(
		[]string{
			RequestID, RequestType, Active, Stage,
			Name, Price, SKU, Quantity, Description, CreatedOn,
			InventoryManagerDecision, InventoryManagerComment,
			DepartmentManagerDecision, DepartmentManagerComment,
			CategoryID, SupplierID, UserID, TeamID, Version, UpdatedAt,
		},
		[]interface{}{
			int64(7), "Add Request", true, "New Request",
			"Widget", 9.99, "AB1234", int64(5), "desc", now,
			spanner.NullString{StringVal: "Approved", Valid: true}, spanner.NullString{},
			spanner.NullString{}, spanner.NullString{},
			int64(1), int64(2), spanner.NullString{StringVal: "staff-1", Valid: true},
			spanner.NullInt64{Int64: 3, Valid: true}, int64(1), now,
		},
	)
	require.NoError(t, err)

	var data Data
	require.NoError(t, row.ToStruct(&data))

	assert.Equal(t, int64(7), data.RequestID)
	assert.Equal(t, "Add Request", data.RequestType)
	assert.True(t, data.Active)
	assert.Equal(t, "New Request", data.Stage)
	assert.Equal(t, "AB1234", data.SKU)
	assert.Equal(t, 9.99, data.Price)
	assert.Equal(t, "Approved", data.InventoryManagerDecision.StringVal)
	assert.Equal(t, "staff-1", data.UserID.StringVal)
	assert.Equal(t, int64(3), data.TeamID.Int64)
	assert.Equal(t, int64(1), data.Version)
	assert.Equal(t, now, data.CreatedOn)
}
