package http

import (
	"errors"
	"net/http"

	"github.com/evaldesk/evaldesk/internal/logger"
	"github.com/evaldesk/evaldesk/internal/service"
	"github.com/evaldesk/evaldesk/internal/store"
	"github.com/evaldesk/evaldesk/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusNotFound,
	service.ErrUnauthenticated:     http.StatusUnauthorized,
	service.ErrInvalidResetToken:   http.StatusBadRequest,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrRecordNotFound:        http.StatusNotFound,
	store.ErrConstraintViolation:   http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// detailFromError maps err to the client-visible detail string. Internal
// error text never reaches the response body.
func detailFromError(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Invalid data provided."
	case errors.Is(err, service.ErrInvalidResetToken):
		return "Invalid password reset token."
	case errors.Is(err, service.ErrUnauthenticated):
		return "Could not validate credentials."
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return "Username already exists."
	case errors.Is(err, store.ErrConstraintViolation):
		return "Record conflicts with existing data."
	case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, store.ErrRecordNotFound):
		return "Record not found."
	default:
		return "Internal server error."
	}
}

// respondError maps err to its HTTP status and writes the generic detail
// body. Unexpected failures are logged with full detail before the response
// collapses them to a 500.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}

	utils.WriteDetail(w, detailFromError(err), status)
}
