package list_workloads

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

type fakeReadModel struct {
	workloads []*contracts.UserWorkload
	lastIDs   []string
}

func (f *fakeReadModel) GetRequestByID(_ context.Context, _ int64) (*contracts.RequestView, error) {
	return nil, domain.ErrRequestNotFound
}

func (f *fakeReadModel) ListRequests(_ context.Context, _ *contracts.ViewFilter) ([]*contracts.RequestView, error) {
	return nil, nil
}

func (f *fakeReadModel) ListWorkloads(_ context.Context, userIDs []string) ([]*contracts.UserWorkload, error) {
	f.lastIDs = userIDs
	return f.workloads, nil
}

type fakeDirectory struct {
	actors       map[string]*domain.Actor
	subordinates map[string][]*domain.Actor
}

func (f *fakeDirectory) Resolve(_ context.Context, userID string) (*domain.Actor, error) {
	if a, ok := f.actors[userID]; ok {
		return a, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeDirectory) TeamByKind(_ context.Context, _ contracts.TeamKind) (*contracts.Team, error) {
	return nil, domain.ErrTeamNotFound
}

func (f *fakeDirectory) SubordinatesOf(_ context.Context, managerID string) ([]*domain.Actor, error) {
	return f.subordinates[managerID], nil
}

func (f *fakeDirectory) ManagersOfTeam(_ context.Context, _ int64) ([]*domain.Actor, error) {
	return nil, nil
}

func TestListWorkloads(t *testing.T) {
	ctx := context.Background()

	manager := &domain.Actor{ID: "mgr-1", TeamID: 1, IsManager: true}
	team := []*domain.Actor{
		{ID: "staff-1", TeamID: 1},
		{ID: "staff-2", TeamID: 1},
	}

	t.Run("orders subordinates least loaded first", func(t *testing.T) {
		rm := &fakeReadModel{workloads: []*contracts.UserWorkload{
			{UserID: "staff-1", ActiveRequests: 4},
			{UserID: "staff-2", ActiveRequests: 1},
		}}
		dir := &fakeDirectory{
			actors:       map[string]*domain.Actor{"mgr-1": manager},
			subordinates: map[string][]*domain.Actor{"mgr-1": team},
		}
		q := NewQuery(rm, dir)

		workloads, err := q.Execute(ctx, &Request{ManagerID: "mgr-1"})
		require.NoError(t, err)

		require.Len(t, workloads, 2)
		assert.Equal(t, "staff-2", workloads[0].UserID)
		assert.Equal(t, "staff-1", workloads[1].UserID)
		assert.Equal(t, []string{"staff-1", "staff-2"}, rm.lastIDs)
	})

	t.Run("manager without subordinates gets an empty list", func(t *testing.T) {
		dir := &fakeDirectory{
			actors:       map[string]*domain.Actor{"mgr-1": manager},
			subordinates: map[string][]*domain.Actor{},
		}
		q := NewQuery(&fakeReadModel{}, dir)

		workloads, err := q.Execute(ctx, &Request{ManagerID: "mgr-1"})
		require.NoError(t, err)
		assert.Empty(t, workloads)
	})

	t.Run("unknown manager fails", func(t *testing.T) {
		q := NewQuery(&fakeReadModel{}, &fakeDirectory{actors: map[string]*domain.Actor{}})
		_, err := q.Execute(ctx, &Request{ManagerID: "ghost"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("manager id is required", func(t *testing.T) {
		q := NewQuery(&fakeReadModel{}, &fakeDirectory{})
		_, err := q.Execute(ctx, &Request{})
		assert.ErrorIs(t, err, domain.ErrActorRequired)
	})
}
