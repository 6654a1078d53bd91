package request

import (
	"time"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
)

// CreateRequestDTO is the body of POST /requests.
type CreateRequestDTO struct {
	RequestType string  `json:"request_type" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	SKU         string  `json:"sku" validate:"required,min=2"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
	SupplierID  int64   `json:"supplier_id" validate:"required,gt=0"`
}

// UpdateRequestDTO is the body of PUT /requests/{requestID}.
type UpdateRequestDTO struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	SKU         string  `json:"sku" validate:"required,min=2"`
	Quantity    int64   `json:"quantity" validate:"gte=0"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id" validate:"required,gt=0"`
	SupplierID  int64   `json:"supplier_id" validate:"required,gt=0"`
}

// DeleteProductRequestDTO is the body of POST /requests/product-deletions.
type DeleteProductRequestDTO struct {
	SKU    string `json:"sku" validate:"required,min=2"`
	UserID string `json:"user_id" validate:"required"`
}

// DecisionDTO is the body of POST /requests/{requestID}/decisions.
type DecisionDTO struct {
	ManagerID string `json:"manager_id" validate:"required"`
	Role      string `json:"role" validate:"required"`
	Decision  string `json:"decision" validate:"required"`
	Comment   string `json:"comment"`
}

// AssignmentDTO is the body of POST /requests/{requestID}/assignments.
type AssignmentDTO struct {
	ManagerID  string `json:"manager_id" validate:"required"`
	AssigneeID string `json:"assignee_id" validate:"required"`
}

// AllocateSKUDTO is the body of POST /sku/allocations.
type AllocateSKUDTO struct {
	Candidate   string `json:"candidate" validate:"required"`
	RequestType string `json:"request_type" validate:"required"`
}

// CreatedResponse carries the id of a newly registered request.
type CreatedResponse struct {
	RequestID int64 `json:"request_id"`
}

// AllocatedSKUResponse carries the resolved SKU.
type AllocatedSKUResponse struct {
	SKU string `json:"sku"`
}

// RequestViewDTO is the wire form of a request projection.
type RequestViewDTO struct {
	RequestID                 int64     `json:"request_id"`
	RequestType               string    `json:"request_type"`
	Active                    bool      `json:"active"`
	Stage                     string    `json:"stage"`
	Name                      string    `json:"name"`
	Price                     float64   `json:"price"`
	SKU                       string    `json:"sku"`
	Quantity                  int64     `json:"quantity"`
	Description               string    `json:"description"`
	CreatedOn                 time.Time `json:"created_on"`
	InventoryManagerDecision  *string   `json:"inventory_manager_decision,omitempty"`
	InventoryManagerComment   *string   `json:"inventory_manager_comment,omitempty"`
	DepartmentManagerDecision *string   `json:"department_manager_decision,omitempty"`
	DepartmentManagerComment  *string   `json:"department_manager_comment,omitempty"`
	CategoryID                int64     `json:"category_id"`
	CategoryName              string    `json:"category_name"`
	SupplierID                int64     `json:"supplier_id"`
	SupplierName              string    `json:"supplier_name"`
	UserID                    *string   `json:"user_id,omitempty"`
	UserName                  string    `json:"user_name"`
	TeamID                    *int64    `json:"team_id,omitempty"`
	TeamName                  string    `json:"team_name"`
	Version                   int64     `json:"version"`
}

// ListRequestsResponse is the body returned by GET /requests.
type ListRequestsResponse struct {
	Requests   []RequestViewDTO `json:"requests"`
	TotalCount int              `json:"total_count"`
}

// WorkloadDTO is one subordinate's active-request tally.
type WorkloadDTO struct {
	UserID         string `json:"user_id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	ActiveRequests int64  `json:"active_requests"`
}

// ListWorkloadsResponse is the body returned by GET /managers/{managerID}/workloads.
type ListWorkloadsResponse struct {
	Workloads []WorkloadDTO `json:"workloads"`
}

// viewToDTO flattens a projection for the wire. Missing relations render as
// empty strings, matching how the list views display them.
func viewToDTO(v *contracts.RequestView) RequestViewDTO {
	dto := RequestViewDTO{
		RequestID:                 v.RequestID,
		RequestType:               v.RequestType,
		Active:                    v.Active,
		Stage:                     v.Stage,
		Name:                      v.Name,
		Price:                     v.Price,
		SKU:                       v.SKU,
		Quantity:                  v.Quantity,
		Description:               v.Description,
		CreatedOn:                 v.CreatedOn,
		InventoryManagerDecision:  v.InventoryManagerDecision,
		InventoryManagerComment:   v.InventoryManagerComment,
		DepartmentManagerDecision: v.DepartmentManagerDecision,
		DepartmentManagerComment:  v.DepartmentManagerComment,
		CategoryID:                v.CategoryID,
		CategoryName:              v.CategoryName,
		SupplierID:                v.SupplierID,
		SupplierName:              v.SupplierFullName(),
		UserID:                    v.UserID,
		TeamID:                    v.TeamID,
		Version:                   v.Version,
	}
	if v.UserFirstName != nil && v.UserLastName != nil {
		dto.UserName = *v.UserFirstName + " " + *v.UserLastName
	}
	if v.TeamName != nil {
		dto.TeamName = *v.TeamName
	}
	return dto
}
