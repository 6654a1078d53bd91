package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/catreq-service/internal/pkg/clock"
)

const (
	staffTeam      int64 = 1
	inventoryTeam  int64 = 2
	departmentTeam int64 = 3
)

func validPayload() Payload {
	return Payload{
		Name:        "Widget",
		Price:       9.99,
		SKU:         "AB1234",
		Quantity:    5,
		Description: "A widget",
		CategoryID:  1,
		SupplierID:  1,
	}
}

func newTestRequest(t *testing.T, requestType RequestType) *Request {
	t.Helper()
	now := time.Now().UTC()
	clk := clock.NewMockClock(now)
	r, err := NewRequest(1, requestType, validPayload(), inventoryTeam, now, clk)
	require.NoError(t, err)
	return r
}

// TestTransition verifies the pure stage transition function across the
// full decision matrix.
func TestTransition(t *testing.T) {
	t.Run("inventory approve moves to approved-by-inventory", func(t *testing.T) {
		next, err := Transition(StageNew, RoleInventoryManager, DecisionApprove)
		require.NoError(t, err)
		assert.Equal(t, StageApprovedByInventory, next)
	})

	t.Run("department approve publishes", func(t *testing.T) {
		next, err := Transition(StageApprovedByInventory, RoleDepartmentManager, DecisionApprove)
		require.NoError(t, err)
		assert.Equal(t, StagePublished, next)
	})

	t.Run("reject-update from either tier", func(t *testing.T) {
		next, err := Transition(StageNew, RoleInventoryManager, DecisionRejectUpdate)
		require.NoError(t, err)
		assert.Equal(t, StageRejectUpdate, next)

		next, err = Transition(StageApprovedByInventory, RoleDepartmentManager, DecisionRejectUpdate)
		require.NoError(t, err)
		assert.Equal(t, StageRejectUpdate, next)
	})

	t.Run("reject-close from either tier", func(t *testing.T) {
		next, err := Transition(StageNew, RoleInventoryManager, DecisionRejectClose)
		require.NoError(t, err)
		assert.Equal(t, StageRejectClose, next)

		next, err = Transition(StageApprovedByInventory, RoleDepartmentManager, DecisionRejectClose)
		require.NoError(t, err)
		assert.Equal(t, StageRejectClose, next)
	})

	t.Run("terminal stages accept no decision", func(t *testing.T) {
		_, err := Transition(StagePublished, RoleInventoryManager, DecisionApprove)
		assert.ErrorIs(t, err, ErrRequestInactive)

		_, err = Transition(StageRejectClose, RoleDepartmentManager, DecisionApprove)
		assert.ErrorIs(t, err, ErrRequestInactive)
	})

	t.Run("unknown decision rejected", func(t *testing.T) {
		_, err := Transition(StageNew, RoleInventoryManager, Decision("Maybe"))
		assert.ErrorIs(t, err, ErrUnknownDecision)
	})
}

// TestApplyDecision verifies the aggregate-level decision flow: decision
// trail, team handoffs, activity flags and materialization directives.
func TestApplyDecision(t *testing.T) {
	now := time.Now().UTC()

	t.Run("inventory approval hands off to department team", func(t *testing.T) {
		r := newTestRequest(t, TypeAdd)

		mat, err := r.ApplyDecision(RoleInventoryManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		assert.Equal(t, MaterializeNone, mat)
		assert.Equal(t, StageApprovedByInventory, r.Stage())
		assert.True(t, r.Active())
		require.NotNil(t, r.TeamID())
		assert.Equal(t, departmentTeam, *r.TeamID())
		assert.Nil(t, r.UserID())
		require.NotNil(t, r.InventoryDecision())
		assert.Equal(t, DecisionApprove, r.InventoryDecision().Verdict)
	})

	t.Run("full approval path publishes an add request", func(t *testing.T) {
		r := newTestRequest(t, TypeAdd)

		_, err := r.ApplyDecision(RoleInventoryManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		mat, err := r.ApplyDecision(RoleDepartmentManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		assert.Equal(t, MaterializeCreate, mat)
		assert.Equal(t, StagePublished, r.Stage())
		assert.False(t, r.Active())
	})

	t.Run("published update request materializes an update", func(t *testing.T) {
		r := newTestRequest(t, TypeUpdate)

		_, err := r.ApplyDecision(RoleInventoryManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		mat, err := r.ApplyDecision(RoleDepartmentManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)
		assert.Equal(t, MaterializeUpdate, mat)
	})

	t.Run("published delete request materializes a delete", func(t *testing.T) {
		r := newTestRequest(t, TypeDelete)

		_, err := r.ApplyDecision(RoleInventoryManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		mat, err := r.ApplyDecision(RoleDepartmentManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)
		assert.Equal(t, MaterializeDelete, mat)
	})

	t.Run("reject-update returns the request to the staff pool", func(t *testing.T) {
		r := newTestRequest(t, TypeAdd)
		require.NoError(t, r.Assign("user-1"))

		mat, err := r.ApplyDecision(RoleInventoryManager, DecisionRejectUpdate, "needs a better description", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		assert.Equal(t, MaterializeNone, mat)
		assert.Equal(t, StageRejectUpdate, r.Stage())
		assert.True(t, r.Active())
		require.NotNil(t, r.TeamID())
		assert.Equal(t, staffTeam, *r.TeamID())
		assert.Nil(t, r.UserID())
	})

	t.Run("reject-close deactivates the request", func(t *testing.T) {
		r := newTestRequest(t, TypeAdd)

		mat, err := r.ApplyDecision(RoleInventoryManager, DecisionRejectClose, "duplicate of an existing product", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		assert.Equal(t, MaterializeNone, mat)
		assert.Equal(t, StageRejectClose, r.Stage())
		assert.False(t, r.Active())
	})

	t.Run("rejection without comment is refused", func(t *testing.T) {
		r := newTestRequest(t, TypeAdd)

		_, err := r.ApplyDecision(RoleInventoryManager, DecisionRejectUpdate, "   ", staffTeam, departmentTeam, now)
		assert.ErrorIs(t, err, ErrCommentRequired)
		assert.Equal(t, StageNew, r.Stage())
		assert.Nil(t, r.InventoryDecision())
	})

	t.Run("department manager cannot act before inventory approval", func(t *testing.T) {
		r := newTestRequest(t, TypeAdd)

		_, err := r.ApplyDecision(RoleDepartmentManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		assert.ErrorIs(t, err, ErrWrongStage)
		assert.Equal(t, StageNew, r.Stage())
	})

	t.Run("department rejection after inventory approval", func(t *testing.T) {
		r := newTestRequest(t, TypeUpdate)

		_, err := r.ApplyDecision(RoleInventoryManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		mat, err := r.ApplyDecision(RoleDepartmentManager, DecisionRejectUpdate, "price looks wrong", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		assert.Equal(t, MaterializeNone, mat)
		assert.Equal(t, StageRejectUpdate, r.Stage())
		require.NotNil(t, r.DepartmentDecision())
		assert.Equal(t, DecisionRejectUpdate, r.DepartmentDecision().Verdict)
	})

	t.Run("no decision lands on an inactive request", func(t *testing.T) {
		r := newTestRequest(t, TypeAdd)

		_, err := r.ApplyDecision(RoleInventoryManager, DecisionRejectClose, "closing", staffTeam, departmentTeam, now)
		require.NoError(t, err)

		_, err = r.ApplyDecision(RoleInventoryManager, DecisionApprove, "", staffTeam, departmentTeam, now)
		assert.ErrorIs(t, err, ErrRequestInactive)
	})
}
