package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/models/m_product"
)

// CatalogStore implements contracts.CatalogStore for Spanner.
type CatalogStore struct {
	client *spanner.Client
	model  *m_product.Model
}

// NewCatalogStore creates a new CatalogStore.
func NewCatalogStore(client *spanner.Client) contracts.CatalogStore {
	return &CatalogStore{
		client: client,
		model:  m_product.NewModel(),
	}
}

// CreateMut creates a mutation inserting a new catalog row from a payload.
func (s *CatalogStore) CreateMut(payload domain.Payload) *spanner.Mutation {
	return s.model.InsertMut(payloadToData(payload))
}

// UpdateMut creates a mutation overwriting an existing catalog row.
func (s *CatalogStore) UpdateMut(payload domain.Payload) *spanner.Mutation {
	return s.model.UpdateMut(payload.SKU, payloadToData(payload))
}

// DeleteMut creates a mutation removing the catalog row for a SKU.
func (s *CatalogStore) DeleteMut(sku string) *spanner.Mutation {
	return s.model.DeleteMut(sku)
}

// GetBySKU retrieves a catalog row by SKU.
func (s *CatalogStore) GetBySKU(ctx context.Context, sku string) (*contracts.ProductRecord, error) {
	row, err := s.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{sku}, []string{
		m_product.SKU,
		m_product.Name,
		m_product.Price,
		m_product.Quantity,
		m_product.Description,
		m_product.CategoryID,
		m_product.SupplierID,
		m_product.CreatedOn,
		m_product.UpdatedAt,
	})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return &contracts.ProductRecord{
		SKU:         data.SKU,
		Name:        data.Name,
		Price:       data.Price,
		Quantity:    data.Quantity,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		SupplierID:  data.SupplierID,
		CreatedOn:   data.CreatedOn,
	}, nil
}

// ExistsTxn checks for a catalog row inside an open read-write transaction.
func (s *CatalogStore) ExistsTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, sku string) (bool, error) {
	_, err := txn.ReadRow(ctx, m_product.TableName, spanner.Key{sku}, []string{m_product.SKU})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to check product existence: %w", err)
	}
	return true, nil
}

func payloadToData(payload domain.Payload) *m_product.Data {
	return &m_product.Data{
		SKU:         payload.SKU,
		Name:        payload.Name,
		Price:       payload.Price,
		Quantity:    payload.Quantity,
		Description: payload.Description,
		CategoryID:  payload.CategoryID,
		SupplierID:  payload.SupplierID,
	}
}
