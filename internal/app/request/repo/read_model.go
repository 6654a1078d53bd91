package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
)

// viewColumns is the joined projection behind every request view. Supplier,
// category, assignee and team names come along so list sorting never needs
// follow-up reads.
const viewColumns = `
	r.request_id, r.request_type, r.active, r.stage,
	r.name, r.price, r.sku, r.quantity, r.description, r.created_on,
	r.inventory_manager_decision, r.inventory_manager_comment,
	r.department_manager_decision, r.department_manager_comment,
	r.category_id, COALESCE(c.name, ''),
	r.supplier_id, COALESCE(s.first_name, ''), COALESCE(s.last_name, ''),
	r.user_id, u.first_name, u.last_name,
	r.team_id, t.name,
	r.version`

const viewJoins = `
	FROM requests r
	LEFT JOIN categories c ON c.category_id = r.category_id
	LEFT JOIN suppliers s ON s.supplier_id = r.supplier_id
	LEFT JOIN users u ON u.user_id = r.user_id
	LEFT JOIN teams t ON t.team_id = r.team_id`

// ReadModelImpl implements RequestReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new RequestReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.RequestReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetRequestByID retrieves a single request view by ID.
func (rm *ReadModelImpl) GetRequestByID(ctx context.Context, requestID int64) (*contracts.RequestView, error) {
	stmt := spanner.Statement{
		SQL:    "SELECT " + viewColumns + viewJoins + " WHERE r.request_id = @requestID",
		Params: map[string]interface{}{"requestID": requestID},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to read request view: %w", err)
	}

	return scanView(row)
}

// ListRequests retrieves request views matching the filter, newest first.
func (rm *ReadModelImpl) ListRequests(ctx context.Context, filter *contracts.ViewFilter) ([]*contracts.RequestView, error) {
	var conditions []string
	params := make(map[string]interface{})

	if filter != nil {
		if filter.UserID != nil {
			conditions = append(conditions, "r.user_id = @userID")
			params["userID"] = *filter.UserID
		}
		if filter.TeamID != nil {
			conditions = append(conditions, "r.team_id = @teamID")
			params["teamID"] = *filter.TeamID
		}
		if filter.Unassigned {
			conditions = append(conditions, "r.user_id IS NULL")
		}
		if filter.Active != nil {
			conditions = append(conditions, "r.active = @active")
			params["active"] = *filter.Active
		}
	}

	sql := "SELECT " + viewColumns + viewJoins
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}
	sql += " ORDER BY r.created_on DESC, r.request_id DESC"

	iter := rm.client.Single().Query(ctx, spanner.Statement{SQL: sql, Params: params})
	defer iter.Stop()

	views := make([]*contracts.RequestView, 0)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate request views: %w", err)
		}

		view, err := scanView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// ListWorkloads tallies active requests per assigned user. Users with no
// active requests still appear with a zero count.
func (rm *ReadModelImpl) ListWorkloads(ctx context.Context, userIDs []string) ([]*contracts.UserWorkload, error) {
	stmt := spanner.Statement{
		SQL: `SELECT u.user_id, u.first_name, u.last_name,
			(SELECT COUNT(*) FROM requests r WHERE r.user_id = u.user_id AND r.active = TRUE)
			FROM users u
			WHERE u.user_id IN UNNEST(@userIDs)
			ORDER BY u.user_id`,
		Params: map[string]interface{}{"userIDs": userIDs},
	}

	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	workloads := make([]*contracts.UserWorkload, 0, len(userIDs))
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate workloads: %w", err)
		}

		w := &contracts.UserWorkload{}
		if err := row.Columns(&w.UserID, &w.FirstName, &w.LastName, &w.ActiveRequests); err != nil {
			return nil, fmt.Errorf("failed to parse workload: %w", err)
		}
		workloads = append(workloads, w)
	}

	return workloads, nil
}

// scanView reads one joined row into a RequestView.
func scanView(row *spanner.Row) (*contracts.RequestView, error) {
	var (
		view          contracts.RequestView
		createdOn     time.Time
		invDecision   spanner.NullString
		invComment    spanner.NullString
		deptDecision  spanner.NullString
		deptComment   spanner.NullString
		userID        spanner.NullString
		userFirstName spanner.NullString
		userLastName  spanner.NullString
		teamID        spanner.NullInt64
		teamName      spanner.NullString
	)

	err := row.Columns(
		&view.RequestID, &view.RequestType, &view.Active, &view.Stage,
		&view.Name, &view.Price, &view.SKU, &view.Quantity, &view.Description, &createdOn,
		&invDecision, &invComment,
		&deptDecision, &deptComment,
		&view.CategoryID, &view.CategoryName,
		&view.SupplierID, &view.SupplierFirstName, &view.SupplierLastName,
		&userID, &userFirstName, &userLastName,
		&teamID, &teamName,
		&view.Version,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse request view: %w", err)
	}

	view.CreatedOn = createdOn
	if invDecision.Valid {
		view.InventoryManagerDecision = &invDecision.StringVal
	}
	if invComment.Valid {
		view.InventoryManagerComment = &invComment.StringVal
	}
	if deptDecision.Valid {
		view.DepartmentManagerDecision = &deptDecision.StringVal
	}
	if deptComment.Valid {
		view.DepartmentManagerComment = &deptComment.StringVal
	}
	if userID.Valid {
		view.UserID = &userID.StringVal
	}
	if userFirstName.Valid {
		view.UserFirstName = &userFirstName.StringVal
	}
	if userLastName.Valid {
		view.UserLastName = &userLastName.StringVal
	}
	if teamID.Valid {
		view.TeamID = &teamID.Int64
	}
	if teamName.Valid {
		view.TeamName = &teamName.StringVal
	}

	return &view, nil
}
