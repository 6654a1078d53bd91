package request

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/light-bringer/catreq-service/internal/app/request/domain"
	"github.com/light-bringer/catreq-service/internal/pkg/committer"
)

// errorResponse is the uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}

// statusForError converts domain errors to HTTP status codes. Every sentinel
// the application layer can surface is mapped here, once.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrTeamNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrSKUTaken),
		errors.Is(err, domain.ErrActiveRequestExists),
		errors.Is(err, domain.ErrRequestInactive),
		errors.Is(err, domain.ErrWrongStage),
		errors.Is(err, domain.ErrAlreadyAssigned),
		errors.Is(err, committer.ErrVersionConflict):
		return http.StatusConflict

	case errors.Is(err, domain.ErrCommentRequired),
		errors.Is(err, domain.ErrUnknownSortKey),
		errors.Is(err, domain.ErrUnknownManagerRole),
		errors.Is(err, domain.ErrUnknownDecision),
		errors.Is(err, domain.ErrInvalidRequestType),
		errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrSKUTooShort),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrInvalidSupplier),
		errors.Is(err, domain.ErrActorRequired):
		return http.StatusBadRequest

	case errors.Is(err, domain.ErrTeamMismatch),
		errors.Is(err, domain.ErrNotSubordinate):
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a domain error as JSON. Internal errors are logged and
// masked; caller faults go out verbatim.
func writeError(w http.ResponseWriter, logger *logrus.Logger, err error) {
	status := statusForError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.WithError(err).Error("request handling failed")
		message = "internal server error"
	}

	writeJSON(w, status, errorResponse{Error: message})
}

// writeJSON renders v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
