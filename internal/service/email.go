package service

import (
	"context"
	"fmt"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	logger.ExternalServiceResult("sendgrid", "send", err)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func bookingWhen(b *domain.Booking) string {
	return fmt.Sprintf("%s from %s to %s",
		b.StartTime.Format("Monday, January 2, 2006"),
		b.StartTime.Format("3:04 PM"),
		b.EndTime.Format("3:04 PM"))
}

func (s *emailService) SendBookingConfirmation(ctx context.Context, email, name string, b *domain.Booking) error {
	subject := fmt.Sprintf("Booking received - %s", b.BookingNumber)
	plainText := fmt.Sprintf("Hello %s,\n\nWe have received your booking %s for %s.\n\nWe will be in touch to confirm.",
		name, b.BookingNumber, bookingWhen(b))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Booking received</h2>
				<p>Hello %s,</p>
				<p>We have received your booking <strong>%s</strong> for %s.</p>
				<p>We will be in touch to confirm.</p>
			</body>
		</html>
	`, name, b.BookingNumber, bookingWhen(b))
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendBookingCancellation(ctx context.Context, email, name string, b *domain.Booking, reason string) error {
	subject := fmt.Sprintf("Booking cancelled - %s", b.BookingNumber)
	plainText := fmt.Sprintf("Hello %s,\n\nYour booking %s for %s has been cancelled.", name, b.BookingNumber, bookingWhen(b))
	if reason != "" {
		plainText += fmt.Sprintf("\n\nReason: %s", reason)
	}
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Booking cancelled</h2>
				<p>Hello %s,</p>
				<p>Your booking <strong>%s</strong> for %s has been cancelled.</p>
				<p>%s</p>
			</body>
		</html>
	`, name, b.BookingNumber, bookingWhen(b), reason)
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendBookingReminder(ctx context.Context, email, name string, b *domain.Booking) error {
	subject := fmt.Sprintf("Reminder: upcoming booking %s", b.BookingNumber)
	plainText := fmt.Sprintf("Hello %s,\n\nThis is a reminder for your booking %s, %s.", name, b.BookingNumber, bookingWhen(b))
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Booking reminder</h2>
				<p>Hello %s,</p>
				<p>This is a reminder for your booking <strong>%s</strong>, %s.</p>
			</body>
		</html>
	`, name, b.BookingNumber, bookingWhen(b))
	return s.send(email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendStaffDigest(ctx context.Context, email, tenantName string, pendingCount int32) error {
	subject := fmt.Sprintf("%s: %d bookings awaiting confirmation", tenantName, pendingCount)
	plainText := fmt.Sprintf("There are %d pending bookings for %s awaiting confirmation.", pendingCount, tenantName)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<p>There are <strong>%d</strong> pending bookings for %s awaiting confirmation.</p>
			</body>
		</html>
	`, pendingCount, tenantName)
	return s.send(email, tenantName, subject, plainText, htmlContent)
}
