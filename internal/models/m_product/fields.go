package m_product

// Field name constants for the products table.
// Products are keyed by SKU, the natural identifier the workflow uses.
const (
	TableName = "products"

	SKU         = "sku"
	Name        = "name"
	Price       = "price"
	Quantity    = "quantity"
	Description = "description"
	CategoryID  = "category_id"
	SupplierID  = "supplier_id"
	CreatedOn   = "created_on"
	UpdatedAt   = "updated_at"
)
