package repo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/models/m_request"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
)

// RequestRepo implements RequestRepository for Spanner.
type RequestRepo struct {
	client *spanner.Client
	model  *m_request.Model
	clock  clock.Clock
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(client *spanner.Client, clk clock.Clock) contracts.RequestRepository {
	return &RequestRepo{
		client: client,
		model:  m_request.NewModel(),
		clock:  clk,
	}
}

// InsertMut creates a mutation for inserting a new request.
func (r *RequestRepo) InsertMut(request *domain.Request) *spanner.Mutation {
	return r.model.InsertMut(r.domainToData(request))
}

// UpdateMut creates a mutation for updating a request (only dirty fields).
func (r *RequestRepo) UpdateMut(request *domain.Request) *spanner.Mutation {
	changes := request.Changes()
	if !changes.HasChanges() {
		return nil
	}

	payload := request.Payload()
	updates := make(map[string]interface{})

	if changes.Dirty(domain.FieldName) {
		updates[m_request.Name] = payload.Name
	}

	if changes.Dirty(domain.FieldPrice) {
		updates[m_request.Price] = payload.Price
	}

	if changes.Dirty(domain.FieldSKU) {
		updates[m_request.SKU] = payload.SKU
	}

	if changes.Dirty(domain.FieldQuantity) {
		updates[m_request.Quantity] = payload.Quantity
	}

	if changes.Dirty(domain.FieldDescription) {
		updates[m_request.Description] = payload.Description
	}

	if changes.Dirty(domain.FieldCategoryID) {
		updates[m_request.CategoryID] = payload.CategoryID
	}

	if changes.Dirty(domain.FieldSupplierID) {
		updates[m_request.SupplierID] = payload.SupplierID
	}

	if changes.Dirty(domain.FieldActive) {
		updates[m_request.Active] = request.Active()
	}

	if changes.Dirty(domain.FieldStage) {
		updates[m_request.Stage] = string(request.Stage())
	}

	if changes.Dirty(domain.FieldInventoryDecision) {
		updates[m_request.InventoryManagerDecision] = decisionString(request.InventoryDecision())
	}

	if changes.Dirty(domain.FieldInventoryComment) {
		updates[m_request.InventoryManagerComment] = decisionComment(request.InventoryDecision())
	}

	if changes.Dirty(domain.FieldDeptDecision) {
		updates[m_request.DepartmentManagerDecision] = decisionString(request.DepartmentDecision())
	}

	if changes.Dirty(domain.FieldDeptComment) {
		updates[m_request.DepartmentManagerComment] = decisionComment(request.DepartmentDecision())
	}

	if changes.Dirty(domain.FieldUserID) {
		if userID := request.UserID(); userID != nil {
			updates[m_request.UserID] = *userID
		} else {
			updates[m_request.UserID] = spanner.NullString{}
		}
	}

	if changes.Dirty(domain.FieldTeamID) {
		if teamID := request.TeamID(); teamID != nil {
			updates[m_request.TeamID] = *teamID
		} else {
			updates[m_request.TeamID] = spanner.NullInt64{}
		}
	}

	if len(updates) == 0 {
		return nil
	}

	// Increment version for optimistic locking
	updates[m_request.Version] = request.Version() + 1

	return r.model.UpdateMut(request.ID(), updates)
}

// GetByID retrieves a request by ID, reconstructing the domain aggregate.
func (r *RequestRepo) GetByID(ctx context.Context, requestID int64) (*domain.Request, error) {
	row, err := r.client.Single().ReadRow(ctx, m_request.TableName, spanner.Key{requestID}, []string{
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
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to read request: %w", err)
	}

	var data m_request.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	return r.dataToDomain(&data), nil
}

// CountActiveBySKUTxn counts active requests carrying the given SKU inside
// an open read-write transaction, so concurrent submissions serialize on
// the same rows.
func (r *RequestRepo) CountActiveBySKUTxn(ctx context.Context, txn *spanner.ReadWriteTransaction, sku string) (int64, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT COUNT(*) FROM %s WHERE %s = @sku AND %s = TRUE",
			m_request.TableName, m_request.SKU, m_request.Active,
		),
		Params: map[string]interface{}{"sku": sku},
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to count active requests: %w", err)
	}

	var count int64
	if err := row.Columns(&count); err != nil {
		return 0, fmt.Errorf("failed to read request count: %w", err)
	}
	return count, nil
}

// NextIDTxn allocates the next request identifier inside an open read-write
// transaction. The MAX read participates in the transaction's lock set, so
// two concurrent submissions cannot claim the same ID.
func (r *RequestRepo) NextIDTxn(ctx context.Context, txn *spanner.ReadWriteTransaction) (int64, error) {
	stmt := spanner.Statement{
		SQL: fmt.Sprintf(
			"SELECT COALESCE(MAX(%s), 0) + 1 FROM %s",
			m_request.RequestID, m_request.TableName,
		),
	}

	iter := txn.Query(ctx, stmt)
	defer iter.Stop()

	row, err := iter.Next()
	if err != nil {
		if err == iterator.Done {
			return 1, nil
		}
		return 0, fmt.Errorf("failed to allocate request id: %w", err)
	}

	var next int64
	if err := row.Columns(&next); err != nil {
		return 0, fmt.Errorf("failed to read allocated id: %w", err)
	}
	return next, nil
}

// domainToData converts a domain Request to database Data.
func (r *RequestRepo) domainToData(request *domain.Request) *m_request.Data {
	payload := request.Payload()

	data := &m_request.Data{
		RequestID:   request.ID(),
		RequestType: string(request.RequestType()),
		Active:      request.Active(),
		Stage:       string(request.Stage()),
		Name:        payload.Name,
		Price:       payload.Price,
		SKU:         payload.SKU,
		Quantity:    payload.Quantity,
		Description: payload.Description,
		CreatedOn:   request.CreatedOn(),
		CategoryID:  payload.CategoryID,
		SupplierID:  payload.SupplierID,
		Version:     request.Version(),
	}

	if dec := request.InventoryDecision(); dec != nil {
		data.InventoryManagerDecision = spanner.NullString{StringVal: string(dec.Verdict), Valid: true}
		data.InventoryManagerComment = spanner.NullString{StringVal: dec.Comment, Valid: true}
	}
	if dec := request.DepartmentDecision(); dec != nil {
		data.DepartmentManagerDecision = spanner.NullString{StringVal: string(dec.Verdict), Valid: true}
		data.DepartmentManagerComment = spanner.NullString{StringVal: dec.Comment, Valid: true}
	}
	if userID := request.UserID(); userID != nil {
		data.UserID = spanner.NullString{StringVal: *userID, Valid: true}
	}
	if teamID := request.TeamID(); teamID != nil {
		data.TeamID = spanner.NullInt64{Int64: *teamID, Valid: true}
	}

	return data
}

// dataToDomain converts database Data to a domain Request.
func (r *RequestRepo) dataToDomain(data *m_request.Data) *domain.Request {
	payload := domain.Payload{
		Name:        data.Name,
		Price:       data.Price,
		SKU:         data.SKU,
		Quantity:    data.Quantity,
		Description: data.Description,
		CategoryID:  data.CategoryID,
		SupplierID:  data.SupplierID,
	}

	var inventoryDecision, departmentDecision *domain.DecisionRecord
	if data.InventoryManagerDecision.Valid {
		inventoryDecision = &domain.DecisionRecord{
			Verdict: domain.Decision(data.InventoryManagerDecision.StringVal),
			Comment: data.InventoryManagerComment.StringVal,
		}
	}
	if data.DepartmentManagerDecision.Valid {
		departmentDecision = &domain.DecisionRecord{
			Verdict: domain.Decision(data.DepartmentManagerDecision.StringVal),
			Comment: data.DepartmentManagerComment.StringVal,
		}
	}

	var userID *string
	if data.UserID.Valid {
		userID = &data.UserID.StringVal
	}
	var teamID *int64
	if data.TeamID.Valid {
		teamID = &data.TeamID.Int64
	}

	return domain.ReconstructRequest(
		data.RequestID,
		domain.RequestType(data.RequestType),
		payload,
		data.Active,
		domain.Stage(data.Stage),
		data.CreatedOn,
		inventoryDecision,
		departmentDecision,
		userID,
		teamID,
		data.Version,
		r.clock,
	)
}

func decisionString(record *domain.DecisionRecord) interface{} {
	if record == nil {
		return spanner.NullString{}
	}
	return string(record.Verdict)
}

func decisionComment(record *domain.DecisionRecord) interface{} {
	if record == nil {
		return spanner.NullString{}
	}
	return record.Comment
}
