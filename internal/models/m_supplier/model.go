package m_supplier

import (
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the suppliers table.
type Data struct {
	SupplierID int64  `spanner:"supplier_id"`
	FirstName  string `spanner:"first_name"`
	LastName   string `spanner:"last_name"`
	Email      string `spanner:"email"`
}

// Model provides a facade for type-safe operations on the suppliers table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a supplier.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		[]string{SupplierID, FirstName, LastName, Email},
		[]interface{}{data.SupplierID, data.FirstName, data.LastName, data.Email},
	)
}
