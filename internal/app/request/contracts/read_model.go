package contracts

import (
	"context"
	"strings"
	"time"
)

// RequestView is a denormalized projection of a change request joined with
// its category, supplier, assignee and team rows.
type RequestView struct {
	RequestID                 int64
	RequestType               string
	Active                    bool
	Stage                     string
	Name                      string
	Price                     float64
	SKU                       string
	Quantity                  int64
	Description               string
	CreatedOn                 time.Time
	InventoryManagerDecision  *string
	InventoryManagerComment   *string
	DepartmentManagerDecision *string
	DepartmentManagerComment  *string
	CategoryID                int64
	CategoryName              string
	SupplierID                int64
	SupplierFirstName         string
	SupplierLastName          string
	UserID                    *string
	UserFirstName             *string
	UserLastName              *string
	TeamID                    *int64
	TeamName                  *string
	Version                   int64
}

// SupplierFullName composes the supplier name for display.
func (v *RequestView) SupplierFullName() string {
	return strings.TrimSpace(v.SupplierFirstName + " " + v.SupplierLastName)
}

// ViewFilter narrows the request projection. Zero value means no filtering.
type ViewFilter struct {
	// UserID restricts to requests assigned to one user
	UserID *string

	// TeamID restricts to requests owned by one team
	TeamID *int64

	// Unassigned restricts to requests with no assigned user
	Unassigned bool

	// Active restricts by lifecycle state when non-nil
	Active *bool
}

// UserWorkload counts the active requests currently assigned to a user.
type UserWorkload struct {
	UserID         string
	FirstName      string
	LastName       string
	ActiveRequests int64
}

// RequestReadModel defines the interface for request queries.
// Read models can bypass the domain layer for performance.
type RequestReadModel interface {
	// GetRequestByID retrieves a single request view by ID
	GetRequestByID(ctx context.Context, requestID int64) (*RequestView, error)

	// ListRequests retrieves request views matching the filter
	ListRequests(ctx context.Context, filter *ViewFilter) ([]*RequestView, error)

	// ListWorkloads tallies active requests per assigned user
	ListWorkloads(ctx context.Context, userIDs []string) ([]*UserWorkload, error)
}
