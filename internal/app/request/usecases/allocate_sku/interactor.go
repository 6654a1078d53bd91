package allocate_sku

import (
	"context"

	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/app/request/domain/services"
)

// Request contains the data needed to allocate a collision-free SKU.
type Request struct {
	Candidate   string
	RequestType string
}

// Interactor handles the allocate SKU use case.
type Interactor struct {
	allocator *services.SKUAllocator
}

// NewInteractor creates a new allocate SKU interactor.
func NewInteractor(allocator *services.SKUAllocator) *Interactor {
	return &Interactor{allocator: allocator}
}

// Execute resolves the candidate SKU against the current namespace and
// returns it, or a deterministic substitute if it is already taken.
func (i *Interactor) Execute(ctx context.Context, req *Request) (string, error) {
	requestType, err := domain.ParseRequestType(req.RequestType)
	if err != nil {
		return "", err
	}
	return i.allocator.Allocate(ctx, req.Candidate, requestType)
}
