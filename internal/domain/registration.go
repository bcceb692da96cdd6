package domain

import (
	"context"
	"time"
)

// RegistrationStatus is the lifecycle status of a registration. Cancellation
// is a hard delete, so stored registrations are always active.
type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationAttended   RegistrationStatus = "attended"
)

// Registration represents a user's sign-up for an event. UserName and
// UserEmail are snapshots taken at registration time and never refreshed.
// swagger:model Registration
type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	UserID       string             `json:"user_id"`
	UserName     string             `json:"user_name"`
	UserEmail    string             `json:"user_email"`
	TicketQRCode string             `json:"ticket_qr_code"`
	Status       RegistrationStatus `json:"status"`
	Attendance   bool               `json:"attendance"`
	RegisteredAt time.Time          `json:"registered_at"`
}

// NewRegistration returns a new Registration. ID is set by the repository on create.
func NewRegistration(eventID string, user *User, ticketQRCode string, registeredAt time.Time) *Registration {
	return &Registration{
		EventID:      eventID,
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		TicketQRCode: ticketQRCode,
		Status:       RegistrationRegistered,
		RegisteredAt: registeredAt,
	}
}

// TicketRenderer turns a ticket payload into an embeddable scannable image
// artifact (e.g. a base64 PNG data URI).
type TicketRenderer interface {
	Render(payload string) (string, error)
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// CreateIfCapacity inserts the registration only while the event's
	// registration count is below its capacity, under a per-event
	// serialization point so concurrent inserts cannot oversell. Returns
	// ErrEventFull when the event is at capacity, ErrAlreadyRegistered on a
	// duplicate (event, user) pair, and ErrNotFound if the event is gone.
	CreateIfCapacity(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*Registration, error)
	ListByUserID(ctx context.Context, userID string) ([]*Registration, error)
	ListByEventID(ctx context.Context, eventID string) ([]*Registration, error)
	Delete(ctx context.Context, id string) error
	CountByEventID(ctx context.Context, eventID string) (int, error)
	CountAttendedByEventID(ctx context.Context, eventID string) (int, error)
	CountAll(ctx context.Context) (int, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	CountByEventOrganizerID(ctx context.Context, organizerID string) (int, error)
}

// RegistrationService defines event sign-up operations.
type RegistrationService interface {
	Register(ctx context.Context, actor *User, eventID string) (*Registration, error)
	ListMine(ctx context.Context, actor *User) ([]*Registration, error)
	// ListForEvent is restricted by the owner-or-admin rule on the event.
	ListForEvent(ctx context.Context, actor *User, eventID string) ([]*Registration, error)
	// Cancel hard-deletes the registration. Only the registrant may cancel.
	Cancel(ctx context.Context, actor *User, registrationID string) error
}
