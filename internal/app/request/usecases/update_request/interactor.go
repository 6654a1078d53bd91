package update_request

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/app/request/domain/services"
	"github.com/light-bringer/catreq-service/internal/models/m_request"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
	"github.com/light-bringer/catreq-service/internal/pkg/committer"
)

// Request contains the data needed to resubmit a change request.
type Request struct {
	RequestID   int64
	Name        string
	Price       float64
	SKU         string
	Quantity    int64
	Description string
	CategoryID  int64
	SupplierID  int64
}

// Interactor handles the update request use case.
type Interactor struct {
	repo       contracts.RequestRepository
	directory  contracts.ActorDirectory
	skuIndex   services.SKUIndex
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new update request interactor.
func NewInteractor(
	repo contracts.RequestRepository,
	directory contracts.ActorDirectory,
	skuIndex services.SKUIndex,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		directory:  directory,
		skuIndex:   skuIndex,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute replaces a request's payload after a Reject - Update (or while it
// is still new). A rejected request returns to the review team's pool.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	request, err := i.repo.GetByID(ctx, req.RequestID)
	if err != nil {
		return err
	}

	defer request.ClearEvents()

	payload := domain.Payload{
		Name:        req.Name,
		Price:       req.Price,
		SKU:         req.SKU,
		Quantity:    req.Quantity,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
	}

	// A changed SKU re-enters the collision namespace.
	if payload.SKU != request.Payload().SKU {
		if err := i.checkSKU(ctx, payload.SKU, request.RequestType()); err != nil {
			return err
		}
	}

	reviewTeam, err := i.directory.TeamByKind(ctx, contracts.TeamKindInventory)
	if err != nil {
		return err
	}

	expectedVersion := request.Version()
	if err := request.Resubmit(payload, reviewTeam.ID, i.clock.Now()); err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(request))

	for _, event := range request.DomainEvents() {
		eventPayload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, eventPayload)))
	}

	if plan.IsEmpty() {
		return nil
	}

	return i.committer.ApplyWithVersionCheck(
		ctx,
		m_request.TableName,
		spanner.Key{request.ID()},
		m_request.Version,
		expectedVersion,
		plan,
	)
}

func (i *Interactor) checkSKU(ctx context.Context, sku string, requestType domain.RequestType) error {
	inCatalog, err := i.skuIndex.ProductSKUExists(ctx, sku)
	if err != nil {
		return err
	}

	switch requestType {
	case domain.TypeAdd:
		if inCatalog {
			return domain.ErrSKUTaken
		}
		inRequests, err := i.skuIndex.RequestSKUExists(ctx, sku)
		if err != nil {
			return err
		}
		if inRequests {
			return domain.ErrSKUTaken
		}
	case domain.TypeUpdate:
		if !inCatalog {
			return domain.ErrProductNotFound
		}
	}

	return nil
}

// serializeEvent converts a domain event to JSON payload.
func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
