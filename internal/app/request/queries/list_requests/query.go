package list_requests

import (
	"context"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// View names accepted by the list query. Anything else falls back to the
// unfiltered listing.
const (
	ViewMyRequests       = "My Request"
	ViewAllRequests      = "All Requests"
	ViewActiveRequests   = "Active Requests"
	ViewInactiveRequests = "Inactive Requests"
	ViewTeamRequests     = "Team Requests"
)

// Request contains view selection and sorting parameters.
type Request struct {
	View       string
	ActorID    string
	SortKey    string
	Descending bool
}

// Query handles the list requests query use case.
type Query struct {
	readModel contracts.RequestReadModel
	directory contracts.ActorDirectory
}

// NewQuery creates a new list requests query.
func NewQuery(readModel contracts.RequestReadModel, directory contracts.ActorDirectory) *Query {
	return &Query{
		readModel: readModel,
		directory: directory,
	}
}

// Execute retrieves request views for the named view, sorted by the given
// key. The sort key is validated before any row is read.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.RequestView, error) {
	if req.SortKey != "" {
		if _, ok := comparators[req.SortKey]; !ok {
			return nil, domain.ErrUnknownSortKey
		}
	}

	filter, err := q.buildFilter(ctx, req)
	if err != nil {
		return nil, err
	}

	views, err := q.readModel.ListRequests(ctx, filter)
	if err != nil {
		return nil, err
	}

	if err := sortViews(views, req.SortKey, req.Descending); err != nil {
		return nil, err
	}

	return views, nil
}

func (q *Query) buildFilter(ctx context.Context, req *Request) (*contracts.ViewFilter, error) {
	switch req.View {
	case ViewMyRequests:
		if req.ActorID == "" {
			return nil, domain.ErrActorRequired
		}
		actorID := req.ActorID
		return &contracts.ViewFilter{UserID: &actorID}, nil

	case ViewActiveRequests:
		active := true
		return &contracts.ViewFilter{Active: &active}, nil

	case ViewInactiveRequests:
		active := false
		return &contracts.ViewFilter{Active: &active}, nil

	case ViewTeamRequests:
		if req.ActorID == "" {
			return nil, domain.ErrActorRequired
		}
		actor, err := q.directory.Resolve(ctx, req.ActorID)
		if err != nil {
			return nil, err
		}
		teamID := actor.TeamID
		return &contracts.ViewFilter{TeamID: &teamID, Unassigned: true}, nil

	default:
		// ViewAllRequests and unrecognized view names list everything.
		return &contracts.ViewFilter{}, nil
	}
}
