package domain

import (
	"context"
	"time"
)

// Rating bounds for event feedback.
const (
	MinRating = 1
	MaxRating = 5
)

// Feedback is a user's one-time rating and comment for an event.
// swagger:model Feedback
type Feedback struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFeedback returns a new Feedback. ID is set by the repository on create.
func NewFeedback(eventID string, user *User, rating int, comment string, createdAt time.Time) *Feedback {
	return &Feedback{
		EventID:   eventID,
		UserID:    user.ID,
		UserName:  user.Name,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: createdAt,
	}
}

// FeedbackRepository defines storage operations for feedback.
type FeedbackRepository interface {
	// Create returns ErrFeedbackExists on a duplicate (event, user) pair.
	Create(ctx context.Context, fb *Feedback) error
	ListByEventID(ctx context.Context, eventID string) ([]*Feedback, error)
}

// FeedbackService defines feedback submission and listing.
type FeedbackService interface {
	Submit(ctx context.Context, actor *User, eventID string, rating int, comment string) (*Feedback, error)
	ListForEvent(ctx context.Context, eventID string) ([]*Feedback, error)
}
