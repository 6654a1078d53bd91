package apply_decision

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/models/m_request"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
	"github.com/light-bringer/catreq-service/internal/pkg/committer"
)

// Request contains the data needed to record a manager decision.
type Request struct {
	RequestID int64
	ManagerID string
	Role      string
	Decision  string
	Comment   string
}

// Interactor handles the apply decision use case.
type Interactor struct {
	repo       contracts.RequestRepository
	catalog    contracts.CatalogStore
	directory  contracts.ActorDirectory
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new apply decision interactor.
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

// Execute records a manager verdict and advances the workflow. The request
// update, any catalog materialization and the outbox events commit in one
// transaction with an optimistic version check, so a decision either lands
// completely or not at all.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	role, err := domain.ParseManagerRole(req.Role)
	if err != nil {
		return err
	}
	decision, err := domain.ParseDecision(req.Decision)
	if err != nil {
		return err
	}

	if req.ManagerID == "" {
		return domain.ErrActorRequired
	}
	actor, err := i.directory.Resolve(ctx, req.ManagerID)
	if err != nil {
		return err
	}

	request, err := i.repo.GetByID(ctx, req.RequestID)
	if err != nil {
		return err
	}

	defer request.ClearEvents()

	if err := domain.Authorize(actor, request); err != nil {
		return err
	}

	staffTeam, err := i.directory.TeamByKind(ctx, contracts.TeamKindStaff)
	if err != nil {
		return err
	}
	departmentTeam, err := i.directory.TeamByKind(ctx, contracts.TeamKindDepartment)
	if err != nil {
		return err
	}

	expectedVersion := request.Version()
	materialization, err := request.ApplyDecision(role, decision, req.Comment, staffTeam.ID, departmentTeam.ID, i.clock.Now())
	if err != nil {
		return err
	}

	plan := committer.NewPlan()
	plan.Add(i.repo.UpdateMut(request))

	payload := request.Payload()
	switch materialization {
	case domain.MaterializeCreate:
		plan.Add(i.catalog.CreateMut(payload))
	case domain.MaterializeUpdate:
		plan.Add(i.catalog.UpdateMut(payload))
	case domain.MaterializeDelete:
		plan.Add(i.catalog.DeleteMut(payload.SKU))
	}

	for _, event := range request.DomainEvents() {
		eventPayload, err := serializeEvent(event)
		if err != nil {
			return fmt.Errorf("failed to serialize event: %w", err)
		}
		plan.Add(i.outboxRepo.InsertMut(i.outboxRepo.EnrichEvent(event, eventPayload)))
	}

	err = i.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		row, err := txn.ReadRow(ctx, m_request.TableName, spanner.Key{request.ID()}, []string{m_request.Version})
		if err != nil {
			return fmt.Errorf("failed to read request version: %w", err)
		}
		var current int64
		if err := row.Column(0, &current); err != nil {
			return fmt.Errorf("failed to parse version: %w", err)
		}
		if current != expectedVersion {
			return committer.ErrVersionConflict
		}

		// The catalog state the materialization assumes must still hold
		// in this transaction's snapshot.
		switch materialization {
		case domain.MaterializeCreate:
			exists, err := i.catalog.ExistsTxn(ctx, txn, payload.SKU)
			if err != nil {
				return err
			}
			if exists {
				return domain.ErrSKUTaken
			}
		case domain.MaterializeUpdate, domain.MaterializeDelete:
			exists, err := i.catalog.ExistsTxn(ctx, txn, payload.SKU)
			if err != nil {
				return err
			}
			if !exists {
				return domain.ErrProductNotFound
			}
		}

		return txn.BufferWrite(plan.Mutations())
	})
	if err != nil {
		if errors.Is(err, committer.ErrVersionConflict) {
			return committer.ErrVersionConflict
		}
		return err
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
