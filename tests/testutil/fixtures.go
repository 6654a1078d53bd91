package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catreq-service/internal/models/m_category"
	"github.com/light-bringer/catreq-service/internal/models/m_product"
	"github.com/light-bringer/catreq-service/internal/models/m_request"
	"github.com/light-bringer/catreq-service/internal/models/m_supplier"
	"github.com/light-bringer/catreq-service/internal/models/m_team"
	"github.com/light-bringer/catreq-service/internal/models/m_user"
)

// Well-known directory fixture IDs seeded by SeedDirectory.
const (
	StaffTeamID      int64 = 1
	InventoryTeamID  int64 = 2
	DepartmentTeamID int64 = 3

	StaffUserID         = "staff-1"
	SecondStaffUserID   = "staff-2"
	StaffManagerID      = "mgr-staff"
	InventoryManagerID  = "mgr-inventory"
	DepartmentManagerID = "mgr-department"

	CategoryID int64 = 1
	SupplierID int64 = 1
)

// SeedDirectory populates teams, users, categories and suppliers with a
// minimal org structure used across the E2E suite.
func SeedDirectory(t *testing.T, client *spanner.Client) {
	t.Helper()

	ctx := context.Background()

	teams := m_team.NewModel()
	users := m_user.NewModel()
	categories := m_category.NewModel()
	suppliers := m_supplier.NewModel()

	mgrStaff := spanner.NullString{StringVal: StaffManagerID, Valid: true}

	mutations := []*spanner.Mutation{
		teams.InsertMut(&m_team.Data{TeamID: StaffTeamID, Name: "Catalog Staff", Kind: m_team.KindStaff}),
		teams.InsertMut(&m_team.Data{TeamID: InventoryTeamID, Name: "Inventory Managers", Kind: m_team.KindInventory}),
		teams.InsertMut(&m_team.Data{TeamID: DepartmentTeamID, Name: "Department Managers", Kind: m_team.KindDepartment}),

		users.InsertMut(&m_user.Data{UserID: StaffManagerID, FirstName: "Sam", LastName: "Ortiz", Email: "sam.ortiz@example.com", TeamID: StaffTeamID, IsManager: true}),
		users.InsertMut(&m_user.Data{UserID: StaffUserID, FirstName: "Riley", LastName: "Chen", Email: "riley.chen@example.com", TeamID: StaffTeamID, ManagerID: mgrStaff}),
		users.InsertMut(&m_user.Data{UserID: SecondStaffUserID, FirstName: "Noor", LastName: "Haddad", Email: "noor.haddad@example.com", TeamID: StaffTeamID, ManagerID: mgrStaff}),
		users.InsertMut(&m_user.Data{UserID: InventoryManagerID, FirstName: "Ada", LastName: "Novak", Email: "ada.novak@example.com", TeamID: InventoryTeamID, IsManager: true}),
		users.InsertMut(&m_user.Data{UserID: DepartmentManagerID, FirstName: "Leo", LastName: "Akintola", Email: "leo.akintola@example.com", TeamID: DepartmentTeamID, IsManager: true}),

		categories.InsertMut(&m_category.Data{CategoryID: CategoryID, Name: "Electronics"}),
		suppliers.InsertMut(&m_supplier.Data{SupplierID: SupplierID, FirstName: "Mira", LastName: "Kovacs", Email: "mira.kovacs@example.com"}),
	}

	_, err := client.Apply(ctx, mutations)
	require.NoError(t, err, "failed to seed directory fixtures")
}

// CreateTestProduct creates a catalog product directly in the database.
func CreateTestProduct(t *testing.T, client *spanner.Client, sku, name string) {
	t.Helper()

	ctx := context.Background()

	model := m_product.NewModel()
	data := &m_product.Data{
		SKU:         sku,
		Name:        name,
		Price:       19.99,
		Quantity:    10,
		Description: "Test product",
		CategoryID:  CategoryID,
		SupplierID:  SupplierID,
	}

	_, err := client.Apply(ctx, []*spanner.Mutation{model.InsertMut(data)})
	require.NoError(t, err, "failed to create test product")
}

// GetProductBySKU retrieves a product from the database for verification.
// Returns nil when no product exists under the SKU.
func GetProductBySKU(t *testing.T, client *spanner.Client, sku string) *m_product.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{sku}, []string{
		m_product.SKU,
		m_product.Name,
		m_product.Price,
		m_product.Quantity,
		m_product.Description,
		m_product.CategoryID,
		m_product.SupplierID,
		m_product.CreatedOn,
		m_product.UpdatedAt,
	})
	if spanner.ErrCode(err) == codes.NotFound {
		return nil
	}
	require.NoError(t, err, "failed to read product %s", sku)

	var data m_product.Data
	require.NoError(t, row.ToStruct(&data), "failed to parse product row")
	return &data
}

// GetRequestRow reads a raw request row for verification.
func GetRequestRow(t *testing.T, client *spanner.Client, requestID int64) *m_request.Data {
	t.Helper()

	ctx := context.Background()
	row, err := client.Single().ReadRow(ctx, m_request.TableName, spanner.Key{requestID}, []string{
		m_request.RequestID,
		m_request.RequestType,
		m_request.Active,
		m_request.Stage,
		m_request.Name,
		m_request.Price,
		m_request.SKU,
		m_request.Quantity,
		m_request.Description,
		m_request.CreatedOn,
		m_request.InventoryManagerDecision,
		m_request.InventoryManagerComment,
		m_request.DepartmentManagerDecision,
		m_request.DepartmentManagerComment,
		m_request.CategoryID,
		m_request.SupplierID,
		m_request.UserID,
		m_request.TeamID,
		m_request.Version,
		m_request.UpdatedAt,
	})
	require.NoError(t, err, "failed to read request %d", requestID)

	var data m_request.Data
	require.NoError(t, row.ToStruct(&data), "failed to parse request row")
	return &data
}

// AssertOutboxEvent verifies an outbox event exists with the given event type.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType string) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL:    "SELECT event_id FROM request_events WHERE event_type = @eventType",
		Params: map[string]interface{}{"eventType": eventType},
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)
	require.NotNil(t, row, "outbox event not found for type: %s", eventType)
}

// AssertOutboxEventCount verifies the count of outbox events.
func AssertOutboxEventCount(t *testing.T, client *spanner.Client, expectedCount int) {
	t.Helper()

	ctx := context.Background()
	stmt := spanner.Statement{
		SQL: "SELECT COUNT(*) FROM request_events",
	}

	iter := client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "failed to query outbox event count")

	var count int64
	err = row.Columns(&count)
	require.NoError(t, err, "failed to parse count")

	require.Equal(t, int64(expectedCount), count, "unexpected outbox event count")
}
