package contracts

import (
	"context"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// RequestRepository defines the interface for change request persistence.
// Repositories return mutations, they don't apply them (Golden Mutation Pattern).
type RequestRepository interface {
	// InsertMut creates a mutation for inserting a new request
	InsertMut(request *domain.Request) *spanner.Mutation

	// UpdateMut creates a mutation for updating a request (only dirty fields)
	UpdateMut(request *domain.Request) *spanner.Mutation

	// GetByID retrieves a request by ID, reconstructing the domain aggregate
	GetByID(ctx context.Context, requestID int64) (*domain.Request, error)

	// CountActiveBySKUTxn counts active requests carrying the given SKU,
	// inside an open read-write transaction
	CountActiveBySKUTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, sku string) (int64, error)

	// NextIDTxn allocates the next request identifier inside an open
	// read-write transaction
	NextIDTxn(ctx context.Context, txn *spanner.ReadWriteTransaction) (int64, error)
}
