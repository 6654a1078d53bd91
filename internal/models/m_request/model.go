package m_request

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the requests table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a request.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			RequestID,
			RequestType,
			Active,
			Stage,
			Name,
			Price,
			SKU,
			Quantity,
			Description,
			CreatedOn,
			InventoryManagerDecision,
			InventoryManagerComment,
			DepartmentManagerDecision,
			DepartmentManagerComment,
			CategoryID,
			SupplierID,
			UserID,
			TeamID,
			Version,
			UpdatedAt,
		},
		[]interface{}{
			data.RequestID,
			data.RequestType,
			data.Active,
			data.Stage,
			data.Name,
			data.Price,
			data.SKU,
			data.Quantity,
			data.Description,
			data.CreatedOn,
			data.InventoryManagerDecision,
			data.InventoryManagerComment,
			data.DepartmentManagerDecision,
			data.DepartmentManagerComment,
			data.CategoryID,
			data.SupplierID,
			data.UserID,
			data.TeamID,
			data.Version,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation for updating specific request fields.
// The updates map should contain field names as keys and new values.
func (m *Model) UpdateMut(requestID int64, updates map[string]interface{}) *spanner.Mutation {
	if len(updates) == 0 {
		return nil
	}

	// Always refresh the updated_at timestamp
	updates[UpdatedAt] = spanner.CommitTimestamp

	columns := make([]string, 0, len(updates)+1)
	values := make([]interface{}, 0, len(updates)+1)

	columns = append(columns, RequestID)
	values = append(values, requestID)

	for col, val := range updates {
		columns = append(columns, col)
		values = append(values, val)
	}

	return spanner.Update(TableName, columns, values)
}
