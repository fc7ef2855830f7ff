package http

import (
	"errors"
	"net/http"

	"github.com/kim-mccallum/recipe-app-api/internal/service"
	"github.com/kim-mccallum/recipe-app-api/internal/store"
	"github.com/kim-mccallum/recipe-app-api/internal/utils"
	"github.com/kim-mccallum/recipe-app-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusUnprocessableEntity,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotRecipeOwner:          http.StatusForbidden,

	store.ErrEmailAlreadyExists:   http.StatusUnprocessableEntity,
	store.ErrNoUserWasFound:       http.StatusNotFound,
	store.ErrRecipeNotFound:       http.StatusNotFound,
	store.ErrImageTooLarge:        http.StatusUnprocessableEntity,
	store.ErrUnsupportedImageType: http.StatusUnprocessableEntity,

	store.ErrRecipeNotSaved:       http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// statusFromError resolves err to the HTTP status of the first matching
// sentinel. Client-facing errors (4xx) are matched before server-side ones
// so a wrapped chain containing both reports the client error.
func statusFromError(err error) (int, error) {
	matchedStatus := http.StatusInternalServerError
	var matched error
	for target, status := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if matched == nil || status < matchedStatus {
			matchedStatus = status
			matched = target
		}
	}
	return matchedStatus, matched
}

// writeError maps err to an HTTP status and writes a JSON message body.
// Server-side failures (5xx) always carry a generic message so that
// internals never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status, matched := statusFromError(err)

	message := http.StatusText(status)
	if matched != nil && status < http.StatusInternalServerError {
		message = matched.Error()
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
