package http

import (
	"errors"
	"net/http"

	"github.com/itemvault/itemvault/internal/service"
	"github.com/itemvault/itemvault/internal/store"
	"github.com/itemvault/itemvault/internal/utils"
	"github.com/itemvault/itemvault/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotItemOwner:            http.StatusForbidden,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrItemNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusBadRequest,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates a service or store error into the JSON error envelope
// the API promises. Unexpected errors are masked with a generic message so
// that internals never leak to the client; the full error has already been
// logged at the point of failure.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := http.StatusText(status)
	for target := range errorStatusMap {
		if errors.Is(err, target) && status != http.StatusInternalServerError {
			message = target.Error()
			break
		}
	}

	utils.WriteJSON(w, models.ErrorResponse{Message: message}, status)
}

// writeAuthError responds with 401 and the given message in the JSON error
// envelope. Used by the auth middleware, where every failure is terminal.
func writeAuthError(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Message: message}, http.StatusUnauthorized)
}
