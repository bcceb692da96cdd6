package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"campusevents/internal/domain"
)

type registrationService struct {
	eventRepo        domain.EventRepository
	registrationRepo domain.RegistrationRepository
	ticketRenderer   domain.TicketRenderer
	emailService     domain.EmailService
	logger           *slog.Logger
}

// NewRegistrationService creates a RegistrationService. emailService may be
// nil; confirmation emails are best-effort either way.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	registrationRepo domain.RegistrationRepository,
	ticketRenderer domain.TicketRenderer,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		ticketRenderer:   ticketRenderer,
		emailService:     emailService,
		logger:           logger,
	}
}

// ticketPayload identifies an (event, user) pair for check-in scanning.
func ticketPayload(eventID, userID, userName string) string {
	return fmt.Sprintf("event:%s|user:%s|name:%s", eventID, userID, userName)
}

func (s *registrationService) Register(ctx context.Context, actor *domain.User, eventID string) (*domain.Registration, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	if _, err := s.registrationRepo.GetByEventAndUser(ctx, eventID, actor.ID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing registration: %w", err)
	}

	qr, err := s.ticketRenderer.Render(ticketPayload(eventID, actor.ID, actor.Name))
	if err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}

	reg := domain.NewRegistration(eventID, actor, qr, time.Now())
	// The repository enforces the capacity invariant atomically; the checks
	// above only exist to fail early with precise errors.
	if err := s.registrationRepo.CreateIfCapacity(ctx, reg); err != nil {
		switch {
		case errors.Is(err, domain.ErrEventFull),
			errors.Is(err, domain.ErrAlreadyRegistered),
			errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	if s.emailService != nil {
		data := &domain.TicketEmailData{
			Email:      actor.Email,
			UserName:   actor.Name,
			EventTitle: event.Title,
			EventDate:  event.Date,
			EventTime:  event.Time,
			Location:   event.Location,
			TicketURI:  qr,
		}
		if err := s.emailService.SendTicketConfirmation(ctx, data); err != nil {
			// Best effort: the registration stands even if the email fails.
			s.logger.Warn("ticket confirmation email failed", "user_id", actor.ID, "event_id", eventID, "err", err)
		}
	}

	return reg, nil
}

func (s *registrationService) ListMine(ctx context.Context, actor *domain.User) ([]*domain.Registration, error) {
	regs, err := s.registrationRepo.ListByUserID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}
	return regs, nil
}

func (s *registrationService) ListForEvent(ctx context.Context, actor *domain.User, eventID string) ([]*domain.Registration, error) {
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
	regs, err := s.registrationRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event registrations: %w", err)
	}
	return regs, nil
}

func (s *registrationService) Cancel(ctx context.Context, actor *domain.User, registrationID string) error {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to get registration: %w", err)
	}
	// Only the registrant may cancel; event owners and admins may not.
	if reg.UserID != actor.ID {
		return domain.ErrForbidden
	}
	if err := s.registrationRepo.Delete(ctx, registrationID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("failed to delete registration: %w", err)
	}
	return nil
}
