package domain

import "errors"

// Domain errors as sentinel values. The transport layer maps each group to a
// distinct status code, so callers can branch without matching error text.
var (
	// Not found
	ErrRequestNotFound = errors.New("request not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrTeamNotFound    = errors.New("team not found")

	// Conflict
	ErrSKUTaken            = errors.New("sku already exists in the system")
	ErrActiveRequestExists = errors.New("an active request already exists for this sku")
	ErrRequestInactive     = errors.New("request is inactive")
	ErrWrongStage          = errors.New("request is not in this manager's stage")
	ErrAlreadyAssigned     = errors.New("request is already assigned to a user")

	// Validation
	ErrCommentRequired    = errors.New("a comment is required when rejecting a request")
	ErrUnknownSortKey     = errors.New("unknown sort key")
	ErrUnknownManagerRole = errors.New("unknown manager type")
	ErrUnknownDecision    = errors.New("unknown decision")
	ErrInvalidRequestType = errors.New("invalid request type")
	ErrEmptyName          = errors.New("request name cannot be empty")
	ErrInvalidPrice       = errors.New("request price must not be negative")
	ErrInvalidQuantity    = errors.New("request quantity must not be negative")
	ErrSKUTooShort        = errors.New("sku must be at least two characters")
	ErrInvalidCategory    = errors.New("category id must be positive")
	ErrInvalidSupplier    = errors.New("supplier id must be positive")
	ErrActorRequired      = errors.New("user id is required for this view")

	// Authorization
	ErrTeamMismatch   = errors.New("request belongs to a different team")
	ErrNotSubordinate = errors.New("user does not report to this manager")
)
