package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"campusevents/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeUnauthorized  = "unauthorized"
	ErrCodeForbidden     = "forbidden"
	ErrCodeNotFound      = "not_found"
	ErrCodeConflict      = "conflict"
	ErrCodeInternalError = "internal_error"
)

// APIError is the error object in the standardized API response envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the standardized envelope for all API responses.
// On success: Data is set, Error is nil. On error: Data is nil, Error is set.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteJSONSuccess sets Content-Type to application/json, writes statusCode,
// and encodes an APIResponse with the given data and error set to nil.
func WriteJSONSuccess(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{Data: data, Error: nil})
}

// WriteJSONError sets Content-Type to application/json, writes statusCode,
// and encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// StatusForError maps domain sentinel errors to an HTTP status and error
// code. Unrecognized errors map to 500/internal_error; callers should log
// those before writing the response.
func StatusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEventFull):
		return http.StatusBadRequest, ErrCodeBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrCodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, ErrCodeForbidden
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrCodeNotFound
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrFeedbackExists):
		return http.StatusConflict, ErrCodeConflict
	}
	return http.StatusInternalServerError, ErrCodeInternalError
}
