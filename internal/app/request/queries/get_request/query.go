package get_request

import (
	"context"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
)

// Request contains the request ID to retrieve.
type Request struct {
	RequestID int64
}

// Query handles the get request query use case.
type Query struct {
	readModel contracts.RequestReadModel
}

// NewQuery creates a new get request query.
func NewQuery(readModel contracts.RequestReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute retrieves a request view by ID.
func (q *Query) Execute(ctx context.Context, req *Request) (*contracts.RequestView, error) {
	return q.readModel.GetRequestByID(ctx, req.RequestID)
}
