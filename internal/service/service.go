package service

import (
	"context"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	// ListAvailableSlots computes the free slots for a resource (or for
	// resource-less appointments when resourceID is nil) on one date.
	// The result is finite, chronological and recomputed on every call.
	ListAvailableSlots(ctx context.Context, actor domain.Actor, resourceID *int32, date time.Time) ([]domain.TimeSlot, error)

	// CheckAvailability decides whether [start, end) is free on the
	// resource. It is the same predicate used by slot generation and by
	// the creation-time re-check.
	CheckAvailability(ctx context.Context, actor domain.Actor, resourceID int32, start, end time.Time, excludeBookingID *uuid.UUID) (*domain.AvailabilityResult, error)

	GetTemplates(ctx context.Context, actor domain.Actor, resourceID int32) ([]domain.AvailabilityTemplate, error)
	PutTemplate(ctx context.Context, actor domain.Actor, t *domain.AvailabilityTemplate) error
}

// CreateBookingInput carries everything needed to create a reservation.
type CreateBookingInput struct {
	Kind             domain.BookingKind
	ResourceID       *int32
	CustomerID       *int32
	GuestName        string
	GuestEmail       string
	GuestPhone       string
	StaffID          *int32
	StartTime        time.Time
	EndTime          time.Time
	TotalAmountCents int32
	Notes            string
	Metadata         map[string]string
	Confirmed        bool // staff may create directly in confirmed
}

// TransitionInput carries per-event parameters for status transitions.
type TransitionInput struct {
	FinalAmountCents *int32
	PaymentStatus    domain.PaymentStatus
	Reason           string
	IdentityRef      string
	KeyRef           string
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor domain.Actor, in CreateBookingInput) (*domain.Booking, error)
	CreatePublicBooking(ctx context.Context, tenantID int32, in CreateBookingInput) (*domain.Booking, error)
	GetBooking(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Booking, error)
	ListBookings(ctx context.Context, actor domain.Actor, filter repository.BookingFilter) ([]domain.Booking, int32, error)
	TransitionBooking(ctx context.Context, actor domain.Actor, id uuid.UUID, event domain.TransitionEvent, in TransitionInput) (*domain.Booking, error)
}

type ResourceStatusService interface {
	// DeriveStatus projects the resource status from current bookings.
	// Manual dirty/maintenance overrides take precedence.
	DeriveStatus(ctx context.Context, actor domain.Actor, resourceID int32) (domain.ResourceStatus, error)
	ListResources(ctx context.Context, actor domain.Actor) ([]domain.Resource, error)
	OverrideStatus(ctx context.Context, actor domain.Actor, resourceID int32, status domain.ResourceStatus) error
	MarkClean(ctx context.Context, actor domain.Actor, resourceID int32) error
}

type NotificationService interface {
	ListNotifications(ctx context.Context, actor domain.Actor, limit, offset int32) ([]domain.Notification, int32, error)
	MarkNotificationRead(ctx context.Context, actor domain.Actor, id int32) error
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, name string, b *domain.Booking) error
	SendBookingCancellation(ctx context.Context, email, name string, b *domain.Booking, reason string) error
	SendBookingReminder(ctx context.Context, email, name string, b *domain.Booking) error
	SendStaffDigest(ctx context.Context, email, tenantName string, pendingCount int32) error
}

// NotificationEvent names a booking lifecycle event fed to the sink.
type NotificationEvent string

const (
	NotifyBookingCreated    NotificationEvent = "booking_created"
	NotifyBookingCheckedIn  NotificationEvent = "booking_checked_in"
	NotifyBookingCheckedOut NotificationEvent = "booking_checked_out"
	NotifyBookingCancelled  NotificationEvent = "booking_cancelled"
	NotifyBookingNoShow     NotificationEvent = "booking_no_show"
	NotifyBookingCompleted  NotificationEvent = "booking_completed"
)

// Notifier is the fire-and-forget notification sink. A failed notification
// never affects a booking state change that already committed.
type Notifier interface {
	Notify(ctx context.Context, event NotificationEvent, b *domain.Booking, detail string)
}
