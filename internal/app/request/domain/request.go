package domain

import (
	"strings"
	"time"

	"github.com/light-bringer/catreq-service/internal/pkg/clock"
)

// Field names for change tracking
const (
	FieldName              = "name"
	FieldPrice             = "price"
	FieldSKU               = "sku"
	FieldQuantity          = "quantity"
	FieldDescription       = "description"
	FieldCategoryID        = "category_id"
	FieldSupplierID        = "supplier_id"
	FieldActive            = "active"
	FieldStage             = "stage"
	FieldInventoryDecision = "inventory_manager_decision"
	FieldInventoryComment  = "inventory_manager_comment"
	FieldDeptDecision      = "department_manager_decision"
	FieldDeptComment       = "department_manager_comment"
	FieldUserID            = "user_id"
	FieldTeamID            = "team_id"
)

// Payload carries the product fields a request proposes to write.
type Payload struct {
	Name        string
	Price       float64
	SKU         string
	Quantity    int64
	Description string
	CategoryID  int64
	SupplierID  int64
}

func (p Payload) validate() error {
	if p.Name == "" {
		return ErrEmptyName
	}
	if len(p.SKU) < 2 {
		return ErrSKUTooShort
	}
	if p.Price < 0 {
		return ErrInvalidPrice
	}
	if p.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if p.CategoryID <= 0 {
		return ErrInvalidCategory
	}
	if p.SupplierID <= 0 {
		return ErrInvalidSupplier
	}
	return nil
}

// DecisionRecord is one manager's verdict with its mandatory-on-rejection comment.
type DecisionRecord struct {
	Verdict Decision
	Comment string
}

// Materialization tells the caller which catalog mutation a published
// request requires.
type Materialization int

const (
	MaterializeNone Materialization = iota
	MaterializeCreate
	MaterializeUpdate
	MaterializeDelete
)

// Request is the aggregate root for the change-request workflow. All stage,
// ownership and decision-trail rules live here; persistence and catalog
// materialization are the caller's concern.
type Request struct {
	id          int64
	requestType RequestType
	payload     Payload
	active      bool
	stage       Stage
	createdOn   time.Time

	inventoryDecision  *DecisionRecord
	departmentDecision *DecisionRecord

	userID *string
	teamID *int64

	version int64

	clock   clock.Clock
	changes *ChangeTracker
	events  []DomainEvent
}

// NewRequest creates a new change request owned by the review team's pool.
// New requests carry no assigned user until a manager hands them out.
func NewRequest(id int64, requestType RequestType, payload Payload, reviewTeamID int64, now time.Time, clk clock.Clock) (*Request, error) {
	if requestType != TypeAdd && requestType != TypeUpdate && requestType != TypeDelete {
		return nil, ErrInvalidRequestType
	}
	if err := payload.validate(); err != nil {
		return nil, err
	}

	team := reviewTeamID
	r := &Request{
		id:          id,
		requestType: requestType,
		payload:     payload,
		active:      true,
		stage:       StageNew,
		createdOn:   now,
		teamID:      &team,
		version:     1,
		clock:       clk,
		changes:     NewChangeTracker(),
		events:      make([]DomainEvent, 0),
	}

	// Mark all fields as dirty for a new request
	for _, f := range []string{
		FieldName, FieldPrice, FieldSKU, FieldQuantity, FieldDescription,
		FieldCategoryID, FieldSupplierID, FieldActive, FieldStage, FieldTeamID,
	} {
		r.changes.MarkDirty(f)
	}

	r.recordEvent(&RequestSubmittedEvent{
		RequestID:   r.id,
		RequestType: string(r.requestType),
		SKU:         r.payload.SKU,
		TeamID:      team,
		SubmittedAt: now,
	})

	return r, nil
}

// ReconstructRequest reconstitutes a Request from storage.
func ReconstructRequest(
	id int64,
	requestType RequestType,
	payload Payload,
	active bool,
	stage Stage,
	createdOn time.Time,
	inventoryDecision, departmentDecision *DecisionRecord,
	userID *string,
	teamID *int64,
	version int64,
	clk clock.Clock,
) *Request {
	return &Request{
		id:                 id,
		requestType:        requestType,
		payload:            payload,
		active:             active,
		stage:              stage,
		createdOn:          createdOn,
		inventoryDecision:  inventoryDecision,
		departmentDecision: departmentDecision,
		userID:             userID,
		teamID:             teamID,
		version:            version,
		clock:              clk,
		changes:            NewChangeTracker(),
		events:             make([]DomainEvent, 0),
	}
}

// Getters
func (r *Request) ID() int64                            { return r.id }
func (r *Request) RequestType() RequestType             { return r.requestType }
func (r *Request) Payload() Payload                     { return r.payload }
func (r *Request) Active() bool                         { return r.active }
func (r *Request) Stage() Stage                         { return r.stage }
func (r *Request) CreatedOn() time.Time                 { return r.createdOn }
func (r *Request) InventoryDecision() *DecisionRecord   { return r.inventoryDecision }
func (r *Request) DepartmentDecision() *DecisionRecord  { return r.departmentDecision }
func (r *Request) UserID() *string                      { return r.userID }
func (r *Request) TeamID() *int64                       { return r.teamID }
func (r *Request) Version() int64                       { return r.version }
func (r *Request) Changes() *ChangeTracker              { return r.changes }
func (r *Request) DomainEvents() []DomainEvent          { return r.events }

// Resubmit replaces the payload of a staff-owned request. A request rejected
// for update returns to the review team's pool in stage New.
func (r *Request) Resubmit(payload Payload, reviewTeamID int64, now time.Time) error {
	if !r.active {
		return ErrRequestInactive
	}
	if r.stage != StageNew && r.stage != StageRejectUpdate {
		return ErrWrongStage
	}
	if err := payload.validate(); err != nil {
		return err
	}

	r.payload = payload
	for _, f := range []string{
		FieldName, FieldPrice, FieldSKU, FieldQuantity, FieldDescription,
		FieldCategoryID, FieldSupplierID,
	} {
		r.changes.MarkDirty(f)
	}

	if r.stage == StageRejectUpdate {
		team := reviewTeamID
		r.stage = StageNew
		r.teamID = &team
		r.userID = nil
		r.changes.MarkDirty(FieldStage)
		r.changes.MarkDirty(FieldTeamID)
		r.changes.MarkDirty(FieldUserID)
	}

	r.recordEvent(&RequestResubmittedEvent{
		RequestID:     r.id,
		SKU:           r.payload.SKU,
		ResubmittedAt: now,
	})

	return nil
}

// Assign hands a pool request to a specific user.
func (r *Request) Assign(userID string) error {
	if !r.active {
		return ErrRequestInactive
	}
	if r.userID != nil && *r.userID != "" {
		return ErrAlreadyAssigned
	}

	uid := userID
	r.userID = &uid
	r.changes.MarkDirty(FieldUserID)

	r.recordEvent(&RequestAssignedEvent{
		RequestID:  r.id,
		UserID:     userID,
		AssignedAt: r.clock.Now(),
	})

	return nil
}

// ApplyDecision records a manager verdict and advances the workflow.
// staffTeamID receives requests rejected for update; departmentTeamID takes
// ownership after first-stage approval. The returned Materialization is
// non-none only when the request reaches Published.
func (r *Request) ApplyDecision(role ManagerRole, decision Decision, comment string, staffTeamID, departmentTeamID int64, now time.Time) (Materialization, error) {
	if decision.IsRejection() && strings.TrimSpace(comment) == "" {
		return MaterializeNone, ErrCommentRequired
	}
	if !r.active {
		return MaterializeNone, ErrRequestInactive
	}
	if role == RoleDepartmentManager && r.stage != StageApprovedByInventory {
		// Second-stage managers only see requests the first stage approved.
		return MaterializeNone, ErrWrongStage
	}

	next, err := Transition(r.stage, role, decision)
	if err != nil {
		return MaterializeNone, err
	}

	record := &DecisionRecord{Verdict: decision, Comment: comment}
	switch role {
	case RoleInventoryManager:
		r.inventoryDecision = record
		r.changes.MarkDirty(FieldInventoryDecision)
		r.changes.MarkDirty(FieldInventoryComment)
	case RoleDepartmentManager:
		r.departmentDecision = record
		r.changes.MarkDirty(FieldDeptDecision)
		r.changes.MarkDirty(FieldDeptComment)
	default:
		return MaterializeNone, ErrUnknownManagerRole
	}

	r.stage = next
	r.changes.MarkDirty(FieldStage)

	r.recordEvent(&DecisionRecordedEvent{
		RequestID: r.id,
		Role:      string(role),
		Decision:  string(decision),
		Comment:   comment,
		DecidedAt: now,
	})

	switch next {
	case StageRejectUpdate:
		team := staffTeamID
		r.teamID = &team
		r.userID = nil
		r.changes.MarkDirty(FieldTeamID)
		r.changes.MarkDirty(FieldUserID)
		return MaterializeNone, nil

	case StageRejectClose:
		r.active = false
		r.changes.MarkDirty(FieldActive)
		r.recordEvent(&RequestClosedEvent{
			RequestID: r.id,
			SKU:       r.payload.SKU,
			ClosedAt:  now,
		})
		return MaterializeNone, nil

	case StageApprovedByInventory:
		team := departmentTeamID
		r.teamID = &team
		r.userID = nil
		r.changes.MarkDirty(FieldTeamID)
		r.changes.MarkDirty(FieldUserID)
		return MaterializeNone, nil

	case StagePublished:
		r.active = false
		r.changes.MarkDirty(FieldActive)
		r.recordEvent(&RequestPublishedEvent{
			RequestID:   r.id,
			RequestType: string(r.requestType),
			SKU:         r.payload.SKU,
			PublishedAt: now,
		})
		switch r.requestType {
		case TypeAdd:
			return MaterializeCreate, nil
		case TypeUpdate:
			return MaterializeUpdate, nil
		case TypeDelete:
			return MaterializeDelete, nil
		}
	}

	return MaterializeNone, nil
}

// recordEvent adds a domain event to the pending list.
func (r *Request) recordEvent(event DomainEvent) {
	r.events = append(r.events, event)
}

// ClearEvents clears recorded events after a successful commit.
func (r *Request) ClearEvents() {
	r.events = make([]DomainEvent, 0)
}
