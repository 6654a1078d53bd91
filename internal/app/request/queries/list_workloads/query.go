package list_workloads

import (
	"context"
	"sort"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// Request contains the manager whose team is being tallied.
type Request struct {
	ManagerID string
}

// Query handles the list workloads query use case.
type Query struct {
	readModel contracts.RequestReadModel
	directory contracts.ActorDirectory
}

// NewQuery creates a new list workloads query.
func NewQuery(readModel contracts.RequestReadModel, directory contracts.ActorDirectory) *Query {
	return &Query{
		readModel: readModel,
		directory: directory,
	}
}

// Execute tallies active requests per subordinate of the manager, least
// loaded first, so the next assignment target is at the front.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.UserWorkload, error) {
	if req.ManagerID == "" {
		return nil, domain.ErrActorRequired
	}
	if _, err := q.directory.Resolve(ctx, req.ManagerID); err != nil {
		return nil, err
	}

	subordinates, err := q.directory.SubordinatesOf(ctx, req.ManagerID)
	if err != nil {
		return nil, err
	}
	if len(subordinates) == 0 {
		return []*contracts.UserWorkload{}, nil
	}

	userIDs := make([]string, 0, len(subordinates))
	for _, s := range subordinates {
		userIDs = append(userIDs, s.ID)
	}

	workloads, err := q.readModel.ListWorkloads(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(workloads, func(i, j int) bool {
		return workloads[i].ActiveRequests < workloads[j].ActiveRequests
	})

	return workloads, nil
}
