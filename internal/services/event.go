package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository
}

// NewEventService creates an EventService with the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) Create(ctx context.Context, actor *domain.User, event *domain.Event) (*domain.Event, error) {
	if !actor.CanOrganize() {
		return nil, domain.ErrForbidden
	}
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if event.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be a positive integer", domain.ErrInvalidInput)
	}
	if event.Status == "" {
		event.Status = domain.EventUpcoming
	} else if _, err := domain.ParseEventStatus(string(event.Status)); err != nil {
		return nil, err
	}
	// Ownership is never client-supplied.
	event.OrganizerID = actor.ID
	if event.OrganizerEmails == nil {
		event.OrganizerEmails = []string{}
	}
	event.CreatedAt = time.Now()

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Get(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, actor *domain.User, id string, update domain.EventUpdate) (*domain.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !event.CanBeManagedBy(actor) {
		return nil, domain.ErrForbidden
	}
	if update.Capacity != nil && *update.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be a positive integer", domain.ErrInvalidInput)
	}
	if update.Status != nil {
		status, err := domain.ParseEventStatus(string(*update.Status))
		if err != nil {
			return nil, err
		}
		update.Status = &status
	}

	updated, err := s.eventRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) Delete(ctx context.Context, actor *domain.User, id string) error {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get event: %w", err)
	}
	if !event.CanBeManagedBy(actor) {
		return domain.ErrForbidden
	}
	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *eventService) ListOrganized(ctx context.Context, actor *domain.User) ([]*domain.Event, error) {
	if !actor.CanOrganize() {
		return nil, domain.ErrForbidden
	}
	events, err := s.eventRepo.ListByOrganizerID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organized events: %w", err)
	}
	return events, nil
}
