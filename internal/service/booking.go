package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/logger"
	"bizsuite-booking-backend/internal/repository"

	"github.com/google/uuid"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	resourceRepo repository.ResourceRepository
	customerRepo repository.CustomerRepository
	notifier     Notifier
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	resourceRepo repository.ResourceRepository,
	customerRepo repository.CustomerRepository,
	notifier Notifier,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		resourceRepo: resourceRepo,
		customerRepo: customerRepo,
		notifier:     notifier,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor domain.Actor, in CreateBookingInput) (*domain.Booking, error) {
	status := domain.BookingStatusPending
	if in.Confirmed {
		status = domain.BookingStatusConfirmed
	}
	return s.create(ctx, actor, in, status)
}

func (s *bookingService) CreatePublicBooking(ctx context.Context, tenantID int32, in CreateBookingInput) (*domain.Booking, error) {
	actor := domain.WidgetActor(tenantID)

	if strings.TrimSpace(in.GuestEmail) == "" {
		return nil, domain.NewValidation("guest email is required")
	}

	// The widget auto-creates a customer record when the email is unknown.
	customer, err := s.customerRepo.GetByEmail(ctx, tenantID, in.GuestEmail)
	switch {
	case err == nil:
		in.CustomerID = &customer.ID
	case domain.IsKind(err, domain.ErrKindNotFound):
		customer = &domain.Customer{
			TenantID: tenantID,
			Name:     in.GuestName,
			Email:    in.GuestEmail,
			Phone:    in.GuestPhone,
		}
		if err := s.customerRepo.Create(ctx, customer); err != nil {
			return nil, domain.NewUnavailable("customer create", err)
		}
		in.CustomerID = &customer.ID
	default:
		return nil, domain.NewUnavailable("customer lookup", err)
	}

	// Public bookings always start pending; staff confirm them later.
	return s.create(ctx, actor, in, domain.BookingStatusPending)
}

func (s *bookingService) create(ctx context.Context, actor domain.Actor, in CreateBookingInput, status domain.BookingStatus) (*domain.Booking, error) {
	if !in.StartTime.Before(in.EndTime) {
		return nil, domain.NewValidation("booking start must be before end")
	}
	kind := in.Kind
	if kind == "" {
		kind = domain.BookingKindStandard
	}

	if in.ResourceID != nil {
		resource, err := s.resourceRepo.GetByID(ctx, actor.TenantID, *in.ResourceID)
		if err != nil {
			if domain.IsKind(err, domain.ErrKindNotFound) {
				return nil, err
			}
			return nil, domain.NewUnavailable("resource lookup", err)
		}
		if !resource.IsActive {
			return nil, domain.NewValidation("resource %s is not active", resource.Name)
		}
	}

	b := &domain.Booking{
		TenantID:         actor.TenantID,
		Kind:             kind,
		ResourceID:       in.ResourceID,
		CustomerID:       in.CustomerID,
		GuestEmail:       strings.ToLower(strings.TrimSpace(in.GuestEmail)),
		StaffID:          in.StaffID,
		StartTime:        in.StartTime,
		EndTime:          in.EndTime,
		Status:           status,
		TotalAmountCents: in.TotalAmountCents,
		PaymentStatus:    domain.PaymentStatusUnpaid,
		Notes:            in.Notes,
		Metadata:         in.Metadata,
	}

	// The repository re-checks the interval inside the creation
	// transaction; slot listings are advisory and may be stale by the
	// time the caller submits.
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		if domain.IsKind(err, domain.ErrKindConflict) {
			return nil, err
		}
		if _, ok := err.(*domain.Error); ok {
			return nil, err
		}
		return nil, domain.NewUnavailable("booking create", err)
	}

	s.notifier.Notify(ctx, NotifyBookingCreated, b, "")
	return b, nil
}

func (s *bookingService) GetBooking(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, actor.TenantID, id)
	if err != nil {
		if domain.IsKind(err, domain.ErrKindNotFound) {
			return nil, err
		}
		return nil, domain.NewUnavailable("booking lookup", err)
	}
	return b, nil
}

func (s *bookingService) ListBookings(ctx context.Context, actor domain.Actor, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, domain.NewValidation("unknown status %q", filter.Status)
	}
	bookings, total, err := s.bookingRepo.List(ctx, actor.TenantID, filter)
	if err != nil {
		return nil, 0, domain.NewUnavailable("booking list", err)
	}
	return bookings, total, nil
}

func (s *bookingService) TransitionBooking(ctx context.Context, actor domain.Actor, id uuid.UUID, event domain.TransitionEvent, in TransitionInput) (*domain.Booking, error) {
	b, err := s.GetBooking(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	next, ok := b.Status.Next(event)
	if !ok {
		return nil, domain.NewInvalidTransition(b.Status, event)
	}

	now := time.Now().UTC()
	switch event {
	case domain.EventCheckIn:
		b.CheckedInAt = &now
		if b.Metadata == nil {
			b.Metadata = map[string]string{}
		}
		b.Metadata["checked_in_by"] = fmt.Sprintf("%d", actor.UserID)
		if in.IdentityRef != "" {
			b.Metadata["identity_ref"] = in.IdentityRef
		}
		if in.KeyRef != "" {
			b.Metadata["key_ref"] = in.KeyRef
		}
	case domain.EventCheckOut:
		b.CheckedOutAt = &now
		final := b.TotalAmountCents
		if in.FinalAmountCents != nil {
			final = *in.FinalAmountCents
		}
		b.FinalAmountCents = &final
		if in.PaymentStatus != "" {
			b.PaymentStatus = in.PaymentStatus
		} else {
			b.PaymentStatus = domain.PaymentStatusPaid
		}
	case domain.EventCancel:
		reason := in.Reason
		if reason == "" {
			reason = "no reason given"
		}
		// Cancellation is a status change, never a deletion; the reason
		// is appended to the notes.
		b.AppendNote(fmt.Sprintf("Cancelled %s: %s", now.Format("2006-01-02 15:04"), reason))
	case domain.EventNoShow:
		b.AppendNote(fmt.Sprintf("Marked no-show %s", now.Format("2006-01-02 15:04")))
	}
	b.Status = next

	// The allowed source statuses travel with the update so the
	// precondition and the write are one atomic step.
	updated, err := s.bookingRepo.UpdateStatus(ctx, b, domain.SourceStatuses(event))
	if err != nil {
		return nil, domain.NewUnavailable("booking transition", err)
	}
	if !updated {
		// A concurrent transition won the race; report the status that
		// actually blocked us.
		current, err := s.bookingRepo.GetByID(ctx, actor.TenantID, id)
		if err != nil {
			return nil, domain.NewInvalidTransition(b.Status, event)
		}
		return nil, domain.NewInvalidTransition(current.Status, event)
	}

	s.applyPostTransition(ctx, event, b, in)
	return b, nil
}

// applyPostTransition performs side effects that follow a committed status
// change. Failures here are logged, never propagated: the transition has
// already committed.
func (s *bookingService) applyPostTransition(ctx context.Context, event domain.TransitionEvent, b *domain.Booking, in TransitionInput) {
	if event == domain.EventCheckOut && b.ResourceID != nil {
		if err := s.resourceRepo.SetStatus(ctx, b.TenantID, *b.ResourceID, domain.ResourceStatusDirty); err != nil {
			logger.Error("Failed to mark resource dirty after checkout",
				"booking", b.BookingNumber, "resource_id", *b.ResourceID, "error", err)
		}
	}

	switch event {
	case domain.EventCheckIn:
		s.notifier.Notify(ctx, NotifyBookingCheckedIn, b, "")
	case domain.EventCheckOut:
		s.notifier.Notify(ctx, NotifyBookingCheckedOut, b, "")
	case domain.EventCancel:
		s.notifier.Notify(ctx, NotifyBookingCancelled, b, in.Reason)
	case domain.EventNoShow:
		s.notifier.Notify(ctx, NotifyBookingNoShow, b, "")
	case domain.EventFinalize:
		s.notifier.Notify(ctx, NotifyBookingCompleted, b, "")
	}
}
