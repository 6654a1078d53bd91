package list_requests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// fakeReadModel serves canned views and records the filter it was asked for.
type fakeReadModel struct {
	views      []*contracts.RequestView
	lastFilter *contracts.ViewFilter
}

func (f *fakeReadModel) GetRequestByID(_ context.Context, requestID int64) (*contracts.RequestView, error) {
	for _, v := range f.views {
		if v.RequestID == requestID {
			return v, nil
		}
	}
	return nil, domain.ErrRequestNotFound
}

func (f *fakeReadModel) ListRequests(_ context.Context, filter *contracts.ViewFilter) ([]*contracts.RequestView, error) {
	f.lastFilter = filter
	return f.views, nil
}

func (f *fakeReadModel) ListWorkloads(_ context.Context, _ []string) ([]*contracts.UserWorkload, error) {
	return nil, nil
}

// fakeDirectory resolves a fixed set of actors.
type fakeDirectory struct {
	actors map[string]*domain.Actor
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

func (f *fakeDirectory) SubordinatesOf(_ context.Context, _ string) ([]*domain.Actor, error) {
	return nil, nil
}

func (f *fakeDirectory) ManagersOfTeam(_ context.Context, _ int64) ([]*domain.Actor, error) {
	return nil, nil
}

func strPtr(s string) *string { return &s }

func sampleViews() []*contracts.RequestView {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []*contracts.RequestView{
		{
			RequestID: 1, Name: "Monitor", Active: false, Stage: "Published", Price: 250, SKU: "MN-100",
			Quantity: 3, CategoryName: "Electronics",
			SupplierFirstName: "Grace", SupplierLastName: "Ibarra",
			UserFirstName: strPtr("Riley"), UserLastName: strPtr("Chen"),
			TeamName: strPtr("Staff"), CreatedOn: base,
		},
		{
			RequestID: 2, Name: "Desk", Active: true, Stage: "New Request", Price: 120, SKU: "DK-200",
			Quantity: 10, CategoryName: "Furniture",
			SupplierFirstName: "Tomas", SupplierLastName: "Keller",
			CreatedOn: base.Add(time.Hour),
		},
		{
			RequestID: 3, Name: "Cable", Active: true, Stage: "Approved By Inventory Manager", Price: 5, SKU: "CB-300",
			Quantity: 100, CategoryName: "Electronics",
			SupplierFirstName: "Grace", SupplierLastName: "Ibarra",
			UserFirstName: strPtr("Noor"), UserLastName: strPtr("Haddad"),
			TeamName: strPtr("Inventory Managers"), CreatedOn: base.Add(2 * time.Hour),
		},
	}
}

func newTestQuery(views []*contracts.RequestView, actors map[string]*domain.Actor) (*Query, *fakeReadModel) {
	rm := &fakeReadModel{views: views}
	return NewQuery(rm, &fakeDirectory{actors: actors}), rm
}

func TestListRequestsSorting(t *testing.T) {
	ctx := context.Background()

	sorted := func(t *testing.T, key string, descending bool) []*contracts.RequestView {
		t.Helper()
		q, _ := newTestQuery(sampleViews(), nil)
		views, err := q.Execute(ctx, &Request{View: ViewAllRequests, SortKey: key, Descending: descending})
		require.NoError(t, err)
		return views
	}

	t.Run("by name ascending", func(t *testing.T) {
		views := sorted(t, SortByName, false)
		assert.Equal(t, []string{"Cable", "Desk", "Monitor"}, []string{views[0].Name, views[1].Name, views[2].Name})
	})

	t.Run("by status orders on the active flag, not the stage", func(t *testing.T) {
		// Stage-lexicographic order would put Cable first; the closed
		// Monitor must lead instead, with the active rows in input order.
		views := sorted(t, SortByStatus, false)
		assert.Equal(t, []int64{1, 2, 3}, []int64{views[0].RequestID, views[1].RequestID, views[2].RequestID})

		views = sorted(t, SortByStatus, true)
		assert.Equal(t, int64(1), views[2].RequestID)
	})

	t.Run("by price descending", func(t *testing.T) {
		views := sorted(t, SortByPrice, true)
		assert.Equal(t, float64(250), views[0].Price)
		assert.Equal(t, float64(5), views[2].Price)
	})

	t.Run("by created-on", func(t *testing.T) {
		views := sorted(t, SortByCreatedOn, false)
		assert.Equal(t, int64(1), views[0].RequestID)
		assert.Equal(t, int64(3), views[2].RequestID)
	})

	t.Run("unassigned user sorts first by user name", func(t *testing.T) {
		views := sorted(t, SortByUserFirstName, false)
		assert.Equal(t, int64(2), views[0].RequestID) // no assignee
		assert.Equal(t, "Noor", *views[1].UserFirstName)
		assert.Equal(t, "Riley", *views[2].UserFirstName)
	})

	t.Run("by supplier last name", func(t *testing.T) {
		views := sorted(t, SortBySupplierLastName, false)
		assert.Equal(t, "Ibarra", views[0].SupplierLastName)
		assert.Equal(t, "Keller", views[2].SupplierLastName)
	})

	t.Run("stable for equal keys", func(t *testing.T) {
		views := sorted(t, SortByCategory, false)
		// Two Electronics rows keep their incoming relative order.
		assert.Equal(t, int64(1), views[0].RequestID)
		assert.Equal(t, int64(3), views[1].RequestID)
		assert.Equal(t, int64(2), views[2].RequestID)
	})

	t.Run("unknown key is rejected before querying", func(t *testing.T) {
		q, rm := newTestQuery(sampleViews(), nil)
		_, err := q.Execute(ctx, &Request{View: ViewAllRequests, SortKey: "Weight"})
		assert.ErrorIs(t, err, domain.ErrUnknownSortKey)
		assert.Nil(t, rm.lastFilter)
	})

	t.Run("empty key keeps the read model order", func(t *testing.T) {
		views := sorted(t, "", false)
		assert.Equal(t, int64(1), views[0].RequestID)
	})
}

func TestListRequestsViews(t *testing.T) {
	ctx := context.Background()

	t.Run("my requests filters by actor", func(t *testing.T) {
		q, rm := newTestQuery(sampleViews(), nil)
		_, err := q.Execute(ctx, &Request{View: ViewMyRequests, ActorID: "user-1"})
		require.NoError(t, err)

		require.NotNil(t, rm.lastFilter.UserID)
		assert.Equal(t, "user-1", *rm.lastFilter.UserID)
	})

	t.Run("my requests requires an actor", func(t *testing.T) {
		q, _ := newTestQuery(sampleViews(), nil)
		_, err := q.Execute(ctx, &Request{View: ViewMyRequests})
		assert.ErrorIs(t, err, domain.ErrActorRequired)
	})

	t.Run("active and inactive views set the activity filter", func(t *testing.T) {
		q, rm := newTestQuery(sampleViews(), nil)

		_, err := q.Execute(ctx, &Request{View: ViewActiveRequests})
		require.NoError(t, err)
		require.NotNil(t, rm.lastFilter.Active)
		assert.True(t, *rm.lastFilter.Active)

		_, err = q.Execute(ctx, &Request{View: ViewInactiveRequests})
		require.NoError(t, err)
		require.NotNil(t, rm.lastFilter.Active)
		assert.False(t, *rm.lastFilter.Active)
	})

	t.Run("team requests targets the actor's unassigned pool", func(t *testing.T) {
		actors := map[string]*domain.Actor{
			"mgr-1": {ID: "mgr-1", TeamID: 2, IsManager: true},
		}
		q, rm := newTestQuery(sampleViews(), actors)

		_, err := q.Execute(ctx, &Request{View: ViewTeamRequests, ActorID: "mgr-1"})
		require.NoError(t, err)

		require.NotNil(t, rm.lastFilter.TeamID)
		assert.Equal(t, int64(2), *rm.lastFilter.TeamID)
		assert.True(t, rm.lastFilter.Unassigned)
	})

	t.Run("team requests with unknown actor fails", func(t *testing.T) {
		q, _ := newTestQuery(sampleViews(), nil)
		_, err := q.Execute(ctx, &Request{View: ViewTeamRequests, ActorID: "ghost"})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("unrecognized views list everything", func(t *testing.T) {
		q, rm := newTestQuery(sampleViews(), nil)
		views, err := q.Execute(ctx, &Request{View: "Everything Please"})
		require.NoError(t, err)

		assert.Len(t, views, 3)
		assert.Nil(t, rm.lastFilter.UserID)
		assert.Nil(t, rm.lastFilter.TeamID)
		assert.Nil(t, rm.lastFilter.Active)
	})
}
