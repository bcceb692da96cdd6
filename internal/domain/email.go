package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// TicketEmailData holds data for the registration confirmation email.
type TicketEmailData struct {
	Email      string
	UserName   string
	EventTitle string
	EventDate  string
	EventTime  string
	Location   string
	TicketURI  string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendTicketConfirmation(ctx context.Context, data *TicketEmailData) error
}
