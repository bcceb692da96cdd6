package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type feedbackService struct {
	eventRepo    domain.EventRepository
	feedbackRepo domain.FeedbackRepository
}

// NewFeedbackService creates a FeedbackService with the given repositories.
func NewFeedbackService(eventRepo domain.EventRepository, feedbackRepo domain.FeedbackRepository) domain.FeedbackService {
	return &feedbackService{
		eventRepo:    eventRepo,
		feedbackRepo: feedbackRepo,
	}
}

func (s *feedbackService) Submit(ctx context.Context, actor *domain.User, eventID string, rating int, comment string) (*domain.Feedback, error) {
	if rating < domain.MinRating || rating > domain.MaxRating {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", domain.ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	fb := domain.NewFeedback(eventID, actor, rating, comment, time.Now())
	if err := s.feedbackRepo.Create(ctx, fb); err != nil {
		if errors.Is(err, domain.ErrFeedbackExists) {
			return nil, domain.ErrFeedbackExists
		}
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return fb, nil
}

func (s *feedbackService) ListForEvent(ctx context.Context, eventID string) ([]*domain.Feedback, error) {
	list, err := s.feedbackRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return list, nil
}
