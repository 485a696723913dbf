package handler

import (
	"errors"
	"net/http"

	"github.com/MohamedHany17m8/x-from-scratch/internal/service"
)

var (
	errNotAuthorized  = errors.New("user is not authorized")
	errInvalidSession = errors.New("invalid session token")
	errInvalidID      = errors.New("provided an invalid ID")
)

// statusForError maps service errors to HTTP status codes: 401 for auth
// failures, 403 for ownership, 404 for missing resources, 400 for validation
// and conflicts, 500 otherwise.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotPostOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrInvalidEmail),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrSelfFollow),
		errors.Is(err, service.ErrEmptyPost):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
