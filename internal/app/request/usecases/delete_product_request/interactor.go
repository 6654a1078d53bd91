package delete_product_request

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
	"github.com/light-bringer/catreq-service/internal/pkg/committer"
)

// Request contains the data needed to propose a catalog removal.
type Request struct {
	SKU    string
	UserID string
}

// Interactor handles the delete product request use case.
type Interactor struct {
	repo       contracts.RequestRepository
	catalog    contracts.CatalogStore
	directory  contracts.ActorDirectory
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new delete product request interactor.
func NewInteractor(
	repo contracts.RequestRepository,
	catalog contracts.CatalogStore,
	directory contracts.ActorDirectory,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		catalog:    catalog,
		directory:  directory,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute synthesizes a Delete-kind change request from the named catalog
// row. The product's current payload is snapshotted into the request so
// reviewers see exactly what would be removed.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	if req.UserID == "" {
		return 0, domain.ErrActorRequired
	}
	if _, err := i.directory.Resolve(ctx, req.UserID); err != nil {
		return 0, err
	}

	product, err := i.catalog.GetBySKU(ctx, req.SKU)
	if err != nil {
		return 0, err
	}

	reviewTeam, err := i.directory.TeamByKind(ctx, contracts.TeamKindInventory)
	if err != nil {
		return 0, err
	}

	payload := domain.Payload{
		Name:        product.Name,
		Price:       product.Price,
		SKU:         product.SKU,
		Quantity:    product.Quantity,
		Description: product.Description,
		CategoryID:  product.CategoryID,
		SupplierID:  product.SupplierID,
	}

	var requestID int64
	err = i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		activeCount, err := i.repo.CountActiveBySKUTxn(ctx, txn, payload.SKU)
		if err != nil {
			return err
		}
		if activeCount > 0 {
			return domain.ErrActiveRequestExists
		}

		id, err := i.repo.NextIDTxn(ctx, txn)
		if err != nil {
			return err
		}

		request, err := domain.NewRequest(id, domain.TypeDelete, payload, reviewTeam.ID, i.clock.Now(), i.clock)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.InsertMut(request))

		for _, event := range request.DomainEvents() {
			eventPayload, err := serializeEvent(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, eventPayload)))
		}

		if err := txn.BufferWrite(plan.Mutations()); err != nil {
			return err
		}

		requestID = id
		return nil
	})
	if err != nil {
		return 0, err
	}

	return requestID, nil
}

// serializeEvent converts a domain event to JSON payload.
func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
