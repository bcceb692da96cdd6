package services

import (
	"context"
	"errors"
	"fmt"
	"math"

	"campusevents/internal/domain"
)

type analyticsService struct {
	eventRepo        domain.EventRepository
	userRepo         domain.UserRepository
	registrationRepo domain.RegistrationRepository
	feedbackRepo     domain.FeedbackRepository
}

// NewAnalyticsService creates an AnalyticsService over the four stores.
func NewAnalyticsService(
	eventRepo domain.EventRepository,
	userRepo domain.UserRepository,
	registrationRepo domain.RegistrationRepository,
	feedbackRepo domain.FeedbackRepository,
) domain.AnalyticsService {
	return &analyticsService{
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		registrationRepo: registrationRepo,
		feedbackRepo:     feedbackRepo,
	}
}

func (s *analyticsService) ForEvent(ctx context.Context, actor *domain.User, eventID string) (*domain.EventAnalytics, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !event.CanBeManagedBy(actor) {
		return nil, domain.ErrForbidden
	}

	registrations, err := s.registrationRepo.CountByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count registrations: %w", err)
	}
	attended, err := s.registrationRepo.CountAttendedByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance: %w", err)
	}
	feedback, err := s.feedbackRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	// Average rating is 0 when there is no feedback.
	var avg float64
	if len(feedback) > 0 {
		sum := 0
		for _, fb := range feedback {
			sum += fb.Rating
		}
		avg = math.Round(float64(sum)/float64(len(feedback))*100) / 100
	}

	return &domain.EventAnalytics{
		EventID:            eventID,
		TotalCapacity:      event.Capacity,
		TotalRegistrations: registrations,
		Attendance:         attended,
		FeedbackCount:      len(feedback),
		AverageRating:      avg,
	}, nil
}

func (s *analyticsService) Overview(ctx context.Context, actor *domain.User) (*domain.OverviewAnalytics, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		events, err := s.eventRepo.CountAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count events: %w", err)
		}
		users, err := s.userRepo.CountAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count users: %w", err)
		}
		registrations, err := s.registrationRepo.CountAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		return &domain.OverviewAnalytics{TotalEvents: events, TotalUsers: users, TotalRegistrations: registrations}, nil

	case domain.RoleOrganizer:
		events, err := s.eventRepo.CountByOrganizerID(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count organized events: %w", err)
		}
		registrations, err := s.registrationRepo.CountByEventOrganizerID(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		return &domain.OverviewAnalytics{TotalEvents: events, TotalRegistrations: registrations}, nil

	default:
		events, err := s.eventRepo.CountAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count events: %w", err)
		}
		registrations, err := s.registrationRepo.CountByUserID(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count registrations: %w", err)
		}
		return &domain.OverviewAnalytics{TotalEvents: events, TotalRegistrations: registrations}, nil
	}
}
