package m_request

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the requests table.
type Data struct {
	RequestID                 int64              `spanner:"request_id"`
	RequestType               string             `spanner:"request_type"`
	Active                    bool               `spanner:"active"`
	Stage                     string             `spanner:"stage"`
	Name                      string             `spanner:"name"`
	Price                     float64            `spanner:"price"`
	SKU                       string             `spanner:"sku"`
	Quantity                  int64              `spanner:"quantity"`
	Description               string             `spanner:"description"`
	CreatedOn                 time.Time          `spanner:"created_on"`
	InventoryManagerDecision  spanner.NullString `spanner:"inventory_manager_decision"`
	InventoryManagerComment   spanner.NullString `spanner:"inventory_manager_comment"`
	DepartmentManagerDecision spanner.NullString `spanner:"department_manager_decision"`
	DepartmentManagerComment  spanner.NullString `spanner:"department_manager_comment"`
	CategoryID                int64              `spanner:"category_id"`
	SupplierID                int64              `spanner:"supplier_id"`
	UserID                    spanner.NullString `spanner:"user_id"`
	TeamID                    spanner.NullInt64  `spanner:"team_id"`
	Version                   int64              `spanner:"version"`
	UpdatedAt                 time.Time          `spanner:"updated_at"`
}
