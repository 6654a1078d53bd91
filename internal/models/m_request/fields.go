package m_request

// Field name constants for the requests table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "requests"

	RequestID                 = "request_id"
	RequestType               = "request_type"
	Active                    = "active"
	Stage                     = "stage"
	Name                      = "name"
	Price                     = "price"
	SKU                       = "sku"
	Quantity                  = "quantity"
	Description               = "description"
	CreatedOn                 = "created_on"
	InventoryManagerDecision  = "inventory_manager_decision"
	InventoryManagerComment   = "inventory_manager_comment"
	DepartmentManagerDecision = "department_manager_decision"
	DepartmentManagerComment  = "department_manager_comment"
	CategoryID                = "category_id"
	SupplierID                = "supplier_id"
	UserID                    = "user_id"
	TeamID                    = "team_id"
	Version                   = "version"
	UpdatedAt                 = "updated_at"
)
