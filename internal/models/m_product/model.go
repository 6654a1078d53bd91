package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		[]string{
			SKU,
			Name,
			Price,
			Quantity,
			Description,
			CategoryID,
			SupplierID,
			CreatedOn,
			UpdatedAt,
		},
		[]interface{}{
			data.SKU,
			data.Name,
			data.Price,
			data.Quantity,
			data.Description,
			data.CategoryID,
			data.SupplierID,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation replacing a product's payload fields.
// The mutation fails at commit time if no product with this SKU exists,
// which keeps a publish and its catalog write in one atomic outcome.
func (m *Model) UpdateMut(sku string, data *Data) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{
			SKU,
			Name,
			Price,
			Quantity,
			Description,
			CategoryID,
			SupplierID,
			UpdatedAt,
		},
		[]interface{}{
			sku,
			data.Name,
			data.Price,
			data.Quantity,
			data.Description,
			data.CategoryID,
			data.SupplierID,
			spanner.CommitTimestamp,
		},
	)
}

// DeleteMut creates a Spanner mutation for deleting a product.
func (m *Model) DeleteMut(sku string) *spanner.Mutation {
	return spanner.Delete(TableName, spanner.Key{sku})
}
