package api

import (
	"errors"
	"net/http"

	"github.com/dkrasnov/shop-api/internal/api/shared"
	"github.com/dkrasnov/shop-api/internal/domain"
	"github.com/dkrasnov/shop-api/internal/service/auth"
	"github.com/dkrasnov/shop-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	// Store plumbing failures: bounded-wait exhaustion, uninitialized
	// handle, driver errors. All are internal as far as clients go.
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, store.ErrProductNotFound):
		return "Product not found"

	// No branch for ErrUserNotFound: login answers every credential failure
	// with one uniform message, and no other route loads users. An
	// account-specific message here would leak account existence.

	case errors.Is(err, store.ErrEmailExists):
		return "Email already exists"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid product ID"

	case errors.Is(err, domain.ErrInvalidPrice):
		return "Invalid price"

	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps err onto a status code and safe message, logs the
// redacted cause, and writes the response. A non-empty messageOverride
// replaces the derived safe message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, messageOverride string) {
	status := MapErrorToStatusCode(err)
	message := messageOverride
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
