package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catreq-service/internal/app/request/domain/services"
	"github.com/light-bringer/catreq-service/internal/models/m_product"
	"github.com/light-bringer/catreq-service/internal/models/m_request"
	"github.com/light-bringer/catreq-service/internal/pkg/query"
)

// SKUIndex implements services.SKUIndex against the products and requests
// tables. Request SKUs are checked across the whole history, not just
// active rows; a request that once claimed a SKU keeps it reserved.
type SKUIndex struct {
	client *spanner.Client
}

// NewSKUIndex creates a new SKUIndex.
func NewSKUIndex(client *spanner.Client) services.SKUIndex {
	return &SKUIndex{client: client}
}

// ProductSKUExists reports whether the live catalog carries the SKU.
func (i *SKUIndex) ProductSKUExists(ctx context.Context, sku string) (bool, error) {
	stmt := query.From(m_product.TableName).
		Where(query.Eq(m_product.SKU, sku)).
		Count().
		Build()
	return i.exists(ctx, stmt)
}

// RequestSKUExists reports whether any registered request carries the SKU.
func (i *SKUIndex) RequestSKUExists(ctx context.Context, sku string) (bool, error) {
	stmt := query.From(m_request.TableName).
		Where(query.Eq(m_request.SKU, sku)).
		Count().
		Build()
	return i.exists(ctx, stmt)
}

func (i *SKUIndex) exists(ctx context.Context, stmt spanner.Statement) (bool, error) {
	iter := i.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return false, fmt.Errorf("failed to count rows: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return false, fmt.Errorf("failed to read count: %w", err)
	}
	return count > 0, nil
}
