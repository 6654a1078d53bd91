//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/app/request/repo"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
	"github.com/light-bringer/catreq-service/tests/testutil"
)

// seedRequest inserts a request row directly, optionally assigned to a user.
func seedRequest(t *testing.T, client *spanner.Client, id int64, sku, userID string, teamID int64) {
	t.Helper()

	ctx := context.Background()
	clk := clock.NewMockClock(time.Now().UTC())
	repository := repo.NewRequestRepo(client, clk)

	payload := domain.Payload{
		Name:        "View Widget",
		Price:       15.50,
		SKU:         sku,
		Quantity:    5,
		Description: "read model fixture",
		CategoryID:  testutil.CategoryID,
		SupplierID:  testutil.SupplierID,
	}
	request, err := domain.NewRequest(id, domain.TypeAdd, payload, teamID, clk.Now(), clk)
	require.NoError(t, err)
	if userID != "" {
		require.NoError(t, request.Assign(userID))
	}

	_, err = client.Apply(ctx, []*spanner.Mutation{repository.InsertMut(request)})
	require.NoError(t, err)
}

func TestReadModel_GetRequestByID(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	testutil.SeedDirectory(t, client)
	seedRequest(t, client, 1, "RM-100", testutil.StaffUserID, testutil.StaffTeamID)

	readModel := repo.NewReadModel(client)
	view, err := readModel.GetRequestByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), view.RequestID)
	assert.Equal(t, "RM-100", view.SKU)
	assert.Equal(t, "Electronics", view.CategoryName)
	assert.Equal(t, "Mira Kovacs", view.SupplierFullName())
	require.NotNil(t, view.UserFirstName)
	assert.Equal(t, "Riley", *view.UserFirstName)
	require.NotNil(t, view.TeamName)
	assert.Equal(t, "Catalog Staff", *view.TeamName)
	assert.Equal(t, int64(1), view.Version)
}

func TestReadModel_GetRequestByID_NotFound(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	readModel := repo.NewReadModel(client)
	_, err := readModel.GetRequestByID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestReadModel_ListRequests_Filters(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	testutil.SeedDirectory(t, client)
	seedRequest(t, client, 1, "RM-200", testutil.StaffUserID, testutil.StaffTeamID)
	seedRequest(t, client, 2, "RM-201", "", testutil.StaffTeamID)
	seedRequest(t, client, 3, "RM-202", "", testutil.InventoryTeamID)

	ctx := context.Background()
	readModel := repo.NewReadModel(client)

	t.Run("no filter returns everything", func(t *testing.T) {
		views, err := readModel.ListRequests(ctx, &contracts.ViewFilter{})
		require.NoError(t, err)
		assert.Len(t, views, 3)
	})

	t.Run("by user", func(t *testing.T) {
		userID := testutil.StaffUserID
		views, err := readModel.ListRequests(ctx, &contracts.ViewFilter{UserID: &userID})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, int64(1), views[0].RequestID)
	})

	t.Run("team pool excludes assigned requests", func(t *testing.T) {
		teamID := testutil.StaffTeamID
		views, err := readModel.ListRequests(ctx, &contracts.ViewFilter{TeamID: &teamID, Unassigned: true})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, int64(2), views[0].RequestID)
	})

	t.Run("by active flag", func(t *testing.T) {
		active := true
		views, err := readModel.ListRequests(ctx, &contracts.ViewFilter{Active: &active})
		require.NoError(t, err)
		assert.Len(t, views, 3)

		inactive := false
		views, err = readModel.ListRequests(ctx, &contracts.ViewFilter{Active: &inactive})
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestReadModel_ListWorkloads(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	testutil.SeedDirectory(t, client)
	seedRequest(t, client, 1, "RM-300", testutil.StaffUserID, testutil.StaffTeamID)
	seedRequest(t, client, 2, "RM-301", testutil.StaffUserID, testutil.StaffTeamID)

	readModel := repo.NewReadModel(client)
	workloads, err := readModel.ListWorkloads(context.Background(), []string{testutil.StaffUserID, testutil.SecondStaffUserID})
	require.NoError(t, err)
	require.Len(t, workloads, 2)

	byUser := make(map[string]int64, len(workloads))
	for _, w := range workloads {
		byUser[w.UserID] = w.ActiveRequests
	}
	assert.Equal(t, int64(2), byUser[testutil.StaffUserID])
	assert.Equal(t, int64(0), byUser[testutil.SecondStaffUserID])
}
