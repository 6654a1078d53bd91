package m_user

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The directory reads user rows back through Row.ToStruct, which matches on
// the spanner field tags, not the Go field names.
func TestDataScansRowColumns(t *testing.T) {
	row, err := spanner.NewRow(
		[]string{UserID, FirstName, LastName, Email, PhoneNumber, TeamID, ManagerID, IsManager},
		[]interface{}{
			"staff-1", "Riley", "Chen", "riley.chen@example.com",
			spanner.NullString{}, int64(1),
			spanner.NullString{StringVal: "mgr-staff", Valid: true}, false,
		},
	)
	require.NoError(t, err)

	var data Data
	require.NoError(t, row.ToStruct(&data))

	assert.Equal(t, "staff-1", data.UserID)
	assert.Equal(t, "Riley", data.FirstName)
	assert.Equal(t, "Chen", data.LastName)
	assert.Equal(t, int64(1), data.TeamID)
	assert.Equal(t, "mgr-staff", data.ManagerID.StringVal)
	assert.False(t, data.IsManager)
}
