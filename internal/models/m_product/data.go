package m_product

import "time"

// Data represents the database model for the products table.
type Data struct {
	SKU         string    `spanner:"sku"`
	Name        string    `spanner:"name"`
	Price       float64   `spanner:"price"`
	Quantity    int64     `spanner:"quantity"`
	Description string    `spanner:"description"`
	CategoryID  int64     `spanner:"category_id"`
	SupplierID  int64     `spanner:"supplier_id"`
	CreatedOn   time.Time `spanner:"created_on"`
	UpdatedAt   time.Time `spanner:"updated_at"`
}
