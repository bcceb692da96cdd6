// Package controllers contains one HTTP controller per resource. Controllers
// decode and validate requests, resolve the authenticated user, call the
// service layer, and map sentinel errors to the response envelope.
package controllers

import (
	"log/slog"
	"net/http"
	"regexp"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// currentUser resolves the authenticated user from the request context. On
// failure it writes the error response and returns false; the caller should
// return immediately. A token whose subject no longer exists yields 404.
func currentUser(w http.ResponseWriter, r *http.Request, auth domain.AuthService, logger *slog.Logger) (*domain.User, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return nil, false
	}
	user, err := auth.CurrentUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, logger, err)
		return nil, false
	}
	return user, true
}

// writeError maps a service error to the response envelope, logging it first
// when it is not a recognized sentinel.
func writeError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	status, code := helpers.StatusForError(err)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteJSONError(w, status, code, err.Error())
}

// MessageResponse is the data payload for operations that return only a confirmation.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}
