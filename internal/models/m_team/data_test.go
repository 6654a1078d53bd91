package m_team

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataScansRowColumns(t *testing.T) {
	row, err := spanner.NewRow(
		[]string{TeamID, Name, Kind},
		[]interface{}{int64(2), "Inventory Managers", KindInventory},
	)
	require.NoError(t, err)

	var data Data
	require.NoError(t, row.ToStruct(&data))

	assert.Equal(t, int64(2), data.TeamID)
	assert.Equal(t, "Inventory Managers", data.Name)
	assert.Equal(t, KindInventory, data.Kind)
}
