package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// EventStatus is the lifecycle status of an event.
type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

// ParseEventStatus validates a status string.
func ParseEventStatus(s string) (EventStatus, error) {
	switch EventStatus(strings.TrimSpace(strings.ToLower(s))) {
	case EventUpcoming:
		return EventUpcoming, nil
	case EventOngoing:
		return EventOngoing, nil
	case EventCompleted:
		return EventCompleted, nil
	case EventCancelled:
		return EventCancelled, nil
	}
	return "", fmt.Errorf("%w: status must be upcoming, ongoing, completed, or cancelled", ErrInvalidInput)
}

// Event represents a campus event. OrganizerEmails is informational only and
// grants no access; ownership is OrganizerID alone.
// swagger:model Event
type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Category        string      `json:"category"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Location        string      `json:"location"`
	Capacity        int         `json:"capacity"`
	OrganizerID     string      `json:"organizer_id"`
	OrganizerEmails []string    `json:"organizer_emails"`
	ImageURL        *string     `json:"image_url"`
	Status          EventStatus `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
}

// CanBeManagedBy implements the owner-or-admin rule: an event and its
// sub-resources may be mutated by an admin or by the owning organizer.
func (e *Event) CanBeManagedBy(u *User) bool {
	return u.IsAdmin() || e.OrganizerID == u.ID
}

// EventUpdate carries a partial update; nil fields are left untouched.
type EventUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Date        *string
	Time        *string
	Location    *string
	Capacity    *int
	Status      *EventStatus
	ImageURL    *string
}

// EventFilter narrows a public event listing. Category matches exactly;
// Search is a case-insensitive substring match on title or description.
type EventFilter struct {
	Category string
	Search   string
}

// EventRepository defines the interface for event storage. Delete cascades to
// the event's registrations and feedback.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	ListByOrganizerID(ctx context.Context, organizerID string) ([]*Event, error)
	Update(ctx context.Context, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
	CountAll(ctx context.Context) (int, error)
	CountByOrganizerID(ctx context.Context, organizerID string) (int, error)
}

// EventService defines the event catalog operations.
type EventService interface {
	Create(ctx context.Context, actor *User, event *Event) (*Event, error)
	List(ctx context.Context, filter EventFilter) ([]*Event, error)
	Get(ctx context.Context, id string) (*Event, error)
	Update(ctx context.Context, actor *User, id string, update EventUpdate) (*Event, error)
	Delete(ctx context.Context, actor *User, id string) error
	ListOrganized(ctx context.Context, actor *User) ([]*Event, error)
}
