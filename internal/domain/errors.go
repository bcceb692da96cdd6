package domain

import "errors"

// Sentinel errors shared across services and repositories. Services return
// these (possibly wrapped) and the HTTP layer maps them to status codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAlreadyRegistered  = errors.New("already registered for this event")
	ErrEventFull          = errors.New("event is at full capacity")
	ErrFeedbackExists     = errors.New("feedback already submitted for this event")
	ErrInvalidInput       = errors.New("invalid input")
)
