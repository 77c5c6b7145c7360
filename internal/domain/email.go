package domain

import "context"

// Mailer sends a single email with html and/or text bodies.
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders a named email template into subject, html,
// and text bodies.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// BookingConfirmationEmailData is the payload for the booking confirmation template.
type BookingConfirmationEmailData struct {
	Email      string
	BookingID  string
	EventTitle string
	EventDate  string
	EventTime  string
	Venue      string
	Location   string
}

// EmailService sends domain emails rendered from templates.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, data *BookingConfirmationEmailData) error
}
