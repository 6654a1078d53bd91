package domain

import "strings"

// Stage represents the workflow stage of a change request.
type Stage string

const (
	StageNew                 Stage = "New Request"
	StageRejectUpdate        Stage = "Reject - Update"
	StageRejectClose         Stage = "Reject - Close"
	StageApprovedByInventory Stage = "Approved By Inventory Manager"
	StagePublished           Stage = "Published"
)

// IsTerminal returns true if no further decisions can be applied in this stage.
func (s Stage) IsTerminal() bool {
	return s == StagePublished || s == StageRejectClose
}

// RequestType classifies the catalog mutation a request proposes.
type RequestType string

const (
	TypeAdd    RequestType = "Add Request"
	TypeUpdate RequestType = "Update Request"
	TypeDelete RequestType = "Delete Request"
)

// ParseRequestType validates a wire-level request type string.
func ParseRequestType(s string) (RequestType, error) {
	switch RequestType(s) {
	case TypeAdd, TypeUpdate, TypeDelete:
		return RequestType(s), nil
	default:
		return "", ErrInvalidRequestType
	}
}

// Decision is a manager verdict on a request.
type Decision string

const (
	DecisionApprove      Decision = "Approved"
	DecisionRejectUpdate Decision = "Reject - Update"
	DecisionRejectClose  Decision = "Reject - Close"
)

// ParseDecision validates a wire-level decision string.
// Unrecognized decisions are rejected rather than silently ignored.
func ParseDecision(s string) (Decision, error) {
	switch Decision(s) {
	case DecisionApprove, DecisionRejectUpdate, DecisionRejectClose:
		return Decision(s), nil
	default:
		return "", ErrUnknownDecision
	}
}

// IsRejection returns true for either rejection kind.
func (d Decision) IsRejection() bool {
	return d == DecisionRejectUpdate || d == DecisionRejectClose
}

// ManagerRole identifies which approval tier a manager acts for.
type ManagerRole string

const (
	RoleInventoryManager  ManagerRole = "InventoryManager"
	RoleDepartmentManager ManagerRole = "DepartmentManager"
)

// ParseManagerRole validates a wire-level manager type. Matching is
// case-insensitive to accept historical client spellings.
func ParseManagerRole(s string) (ManagerRole, error) {
	switch {
	case strings.EqualFold(s, string(RoleInventoryManager)):
		return RoleInventoryManager, nil
	case strings.EqualFold(s, string(RoleDepartmentManager)):
		return RoleDepartmentManager, nil
	default:
		return "", ErrUnknownManagerRole
	}
}

// Transition computes the next workflow stage for a manager decision.
// It is a pure function over the closed stage set; side effects on team
// ownership and assignment are handled by the aggregate.
func Transition(current Stage, role ManagerRole, decision Decision) (Stage, error) {
	if current.IsTerminal() {
		return current, ErrRequestInactive
	}

	switch decision {
	case DecisionRejectUpdate:
		return StageRejectUpdate, nil
	case DecisionRejectClose:
		return StageRejectClose, nil
	case DecisionApprove:
		switch role {
		case RoleInventoryManager:
			return StageApprovedByInventory, nil
		case RoleDepartmentManager:
			return StagePublished, nil
		}
	}

	return current, ErrUnknownDecision
}
