package services

import (
	"context"
	"fmt"

	"campusevents/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and
// template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendTicketConfirmation sends the registration confirmation email using the
// "ticket" template.
func (s *emailService) SendTicketConfirmation(ctx context.Context, data *domain.TicketEmailData) error {
	if data == nil {
		return fmt.Errorf("ticket email data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("ticket", data)
	if err != nil {
		return fmt.Errorf("failed to render ticket template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send ticket email: %w", err)
	}
	return nil
}
