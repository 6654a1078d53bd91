package m_supplier

// Field name constants for the suppliers table.
const (
	TableName = "suppliers"

	SupplierID = "supplier_id"
	FirstName  = "first_name"
	LastName   = "last_name"
	Email      = "email"
)
