package domain

import "context"

// EventAnalytics aggregates registration and feedback figures for one event.
// AverageRating is 0 when the event has no feedback.
// swagger:model EventAnalytics
type EventAnalytics struct {
	EventID            string  `json:"event_id"`
	TotalCapacity      int     `json:"total_capacity"`
	TotalRegistrations int     `json:"total_registrations"`
	Attendance         int     `json:"attendance"`
	FeedbackCount      int     `json:"feedback_count"`
	AverageRating      float64 `json:"average_rating"`
}

// OverviewAnalytics is the role-scoped aggregate returned by the overview
// endpoint. TotalUsers is 0 for non-admin callers.
// swagger:model OverviewAnalytics
type OverviewAnalytics struct {
	TotalEvents        int `json:"total_events"`
	TotalUsers         int `json:"total_users"`
	TotalRegistrations int `json:"total_registrations"`
}

// AnalyticsService derives aggregate figures from the stores.
type AnalyticsService interface {
	// ForEvent is restricted by the owner-or-admin rule on the event.
	ForEvent(ctx context.Context, actor *User, eventID string) (*EventAnalytics, error)
	Overview(ctx context.Context, actor *User) (*OverviewAnalytics, error)
}
