package create_request

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

// Request contains the data needed to register a change request.
type Request struct {
	RequestType string
	Name        string
	Price       float64
	SKU         string
	Quantity    int64
	Description string
	CategoryID  int64
	SupplierID  int64
}

// Interactor handles the create request use case.
type Interactor struct {
	repo       contracts.RequestRepository
	catalog    contracts.CatalogStore
	directory  contracts.ActorDirectory
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new create request interactor.
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

// Execute registers an Add or Update change request. The SKU checks, the
// one-active-request rule and the id allocation all run inside the insert
// transaction, so concurrent submissions for the same SKU cannot both land.
func (i *Interactor) Execute(ctx context.Context, req *Request) (int64, error) {
	requestType, err := domain.ParseRequestType(req.RequestType)
	if err != nil {
		return 0, err
	}
	if requestType != domain.TypeAdd && requestType != domain.TypeUpdate {
		// Delete requests are synthesized from the catalog, not submitted raw.
		return 0, domain.ErrInvalidRequestType
	}

	reviewTeam, err := i.directory.TeamByKind(ctx, contracts.TeamKindInventory)
	if err != nil {
		return 0, err
	}

	payload := domain.Payload{
		Name:        req.Name,
		Price:       req.Price,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
	}

	var requestID int64
	err = i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		inCatalog, err := i.catalog.ExistsTxn(ctx, txn, payload.SKU)
		if err != nil {
			return err
		}
		switch requestType {
		case domain.TypeAdd:
			if inCatalog {
				return domain.ErrSKUTaken
			}
		case domain.TypeUpdate:
			if !inCatalog {
				return domain.ErrProductNotFound
			}
		}

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

		request, err := domain.NewRequest(id, requestType, payload, reviewTeam.ID, i.clock.Now(), i.clock)
		if err != nil {
			return err
		}

		plan := committer.NewPlan()
		plan.Add(i.repo.InsertMut(request))

		for _, event := range request.DomainEvents() {
			payload, err := serializeEvent(event)
			if err != nil {
				return fmt.Errorf("failed to serialize event: %w", err)
			}
			plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, payload)))
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
