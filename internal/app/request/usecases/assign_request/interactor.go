package assign_request

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/models/m_request"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
	"github.com/light-bringer/catreq-service/internal/pkg/committer"
)

// Request contains the data needed to assign a request to a team member.
type Request struct {
	RequestID  int64
	ManagerID  string
	AssigneeID string
}

// Interactor handles the assign request use case.
type Interactor struct {
	repo       contracts.RequestRepository
	directory  contracts.ActorDirectory
	outboxRepo contracts.OutboxRepository
	committer  *committer.Committer
	clock      clock.Clock
}

// NewInteractor creates a new assign request interactor.
func NewInteractor(
	repo contracts.RequestRepository,
	directory contracts.ActorDirectory,
	outboxRepo contracts.OutboxRepository,
	committer *committer.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		directory:  directory,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute hands a pool request to one of the manager's subordinates.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if req.ManagerID == "" || req.AssigneeID == "" {
		return domain.ErrActorRequired
	}

	subordinates, err := i.directory.SubordinatesOf(ctx, req.ManagerID)
	if err != nil {
		return err
	}

	var assignee *domain.Actor
	for _, s := range subordinates {
		if s.ID == req.AssigneeID {
			assignee = s
			break
		}
	}
	if assignee == nil {
		return domain.ErrNotSubordinate
	}

	request, err := i.repo.GetByID(ctx, req.RequestID)
	if err != nil {
		return err
	}

	defer request.ClearEvents()

	if err := domain.Authorize(assignee, request); err != nil {
		return err
	}

	expectedVersion := request.Version()
	if err := request.Assign(assignee.ID); err != nil {
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

	return i.committer.ApplyWithVersionCheck(
		ctx,
		m_request.TableName,
		spanner.Key{request.ID()},
		m_request.Version,
		expectedVersion,
		plan,
	)
}

// serializeEvent converts a domain event to JSON payload.
func serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
