package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// ProductRecord is a snapshot of a catalog row keyed by SKU.
type ProductRecord struct {
	SKU         string
	Name        string
	Price       float64
	Quantity    int64
	Description string
	CategoryID  int64
	SupplierID  int64
	CreatedOn   time.Time
}

// CatalogStore defines the interface for materializing published requests
// into the product catalog. Mutations are buffered into the same commit
// that finalizes the request, so catalog and request state never diverge.
type CatalogStore interface {
	// CreateMut creates a mutation inserting a new catalog row from a payload
	CreateMut(payload domain.Payload) *spanner.Mutation

	// UpdateMut creates a mutation overwriting an existing catalog row
	UpdateMut(payload domain.Payload) *spanner.Mutation

	// DeleteMut creates a mutation removing the catalog row for a SKU
	DeleteMut(sku string) *spanner.Mutation

	// GetBySKU retrieves a catalog row by SKU
	GetBySKU(ctx context.Context, sku string) (*ProductRecord, error)

	// ExistsTxn checks for a catalog row inside an open read-write transaction
	ExistsTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, sku string) (bool, error)
}
