package service

import (
	"context"
	"fmt"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/logger"
	"bizsuite-booking-backend/internal/repository"
)

type notifier struct {
	noteRepo     repository.NotificationRepository
	customerRepo repository.CustomerRepository
	emailSvc     EmailService
}

func NewNotifier(noteRepo repository.NotificationRepository, customerRepo repository.CustomerRepository, emailSvc EmailService) Notifier {
	return &notifier{noteRepo: noteRepo, customerRepo: customerRepo, emailSvc: emailSvc}
}

var eventTitles = map[NotificationEvent]string{
	NotifyBookingCreated:    "New booking",
	NotifyBookingCheckedIn:  "Guest checked in",
	NotifyBookingCheckedOut: "Guest checked out",
	NotifyBookingCancelled:  "Booking cancelled",
	NotifyBookingNoShow:     "Booking marked no-show",
	NotifyBookingCompleted:  "Booking completed",
}

// Notify records the event in-app and emails the customer where it matters.
// All failures are logged and swallowed: the booking change this event
// describes has already committed.
func (n *notifier) Notify(ctx context.Context, event NotificationEvent, b *domain.Booking, detail string) {
	message := fmt.Sprintf("Booking %s (%s)", b.BookingNumber, bookingWhen(b))
	if detail != "" {
		message += ": " + detail
	}
	note := &domain.Notification{
		TenantID: b.TenantID,
		Title:    eventTitles[event],
		Message:  message,
		Attributes: map[string]string{
			"type":           string(event),
			"booking_id":     b.ID.String(),
			"booking_number": b.BookingNumber,
		},
	}
	if err := n.noteRepo.Create(ctx, note); err != nil {
		logger.Error("Failed to record notification", "event", event, "booking", b.BookingNumber, "error", err)
	}

	email, name := n.recipient(ctx, b)
	if email == "" {
		return
	}

	var err error
	switch event {
	case NotifyBookingCreated:
		err = n.emailSvc.SendBookingConfirmation(ctx, email, name, b)
	case NotifyBookingCancelled:
		err = n.emailSvc.SendBookingCancellation(ctx, email, name, b, detail)
	default:
		return
	}
	if err != nil {
		logger.Error("Failed to send booking email", "event", event, "booking", b.BookingNumber, "error", err)
	}
}

func (n *notifier) recipient(ctx context.Context, b *domain.Booking) (string, string) {
	if b.CustomerID != nil {
		customer, err := n.customerRepo.GetByID(ctx, b.TenantID, *b.CustomerID)
		if err == nil {
			return customer.Email, customer.Name
		}
		logger.Warn("Failed to resolve booking customer", "booking", b.BookingNumber, "error", err)
	}
	if b.GuestEmail != "" {
		return b.GuestEmail, "Guest"
	}
	return "", ""
}
