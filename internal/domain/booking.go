package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusCheckedIn  BookingStatus = "checked_in"
	BookingStatusCheckedOut BookingStatus = "checked_out"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
	BookingStatusNoShow     BookingStatus = "no_show"
)

// AllBookingStatuses lists every recognized status, used for validation and
// exhaustive transition checks.
var AllBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCheckedIn,
	BookingStatusCheckedOut,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusNoShow,
}

type BookingKind string

const (
	BookingKindStandard    BookingKind = "booking"
	BookingKindAppointment BookingKind = "appointment"
)

// NumberPrefix returns the booking-number prefix for this kind.
func (k BookingKind) NumberPrefix() string {
	if k == BookingKindAppointment {
		return "APT"
	}
	return "BK"
}

type TransitionEvent string

const (
	EventCheckIn  TransitionEvent = "check_in"
	EventCheckOut TransitionEvent = "check_out"
	EventCancel   TransitionEvent = "cancel"
	EventNoShow   TransitionEvent = "no_show"
	EventFinalize TransitionEvent = "finalize"
)

var AllTransitionEvents = []TransitionEvent{
	EventCheckIn,
	EventCheckOut,
	EventCancel,
	EventNoShow,
	EventFinalize,
}

// transitions is the booking state machine. A (status, event) pair absent
// from this table is an invalid transition.
var transitions = map[BookingStatus]map[TransitionEvent]BookingStatus{
	BookingStatusPending: {
		EventCheckIn: BookingStatusCheckedIn,
		EventCancel:  BookingStatusCancelled,
		EventNoShow:  BookingStatusNoShow,
	},
	BookingStatusConfirmed: {
		EventCheckIn: BookingStatusCheckedIn,
		EventCancel:  BookingStatusCancelled,
		EventNoShow:  BookingStatusNoShow,
	},
	BookingStatusCheckedIn: {
		EventCheckOut: BookingStatusCheckedOut,
		EventNoShow:   BookingStatusNoShow,
	},
	BookingStatusCheckedOut: {
		EventFinalize: BookingStatusCompleted,
	},
}

// Next returns the status reached by applying event to the current status.
func (s BookingStatus) Next(event TransitionEvent) (BookingStatus, bool) {
	next, ok := transitions[s][event]
	return next, ok
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	for _, known := range AllBookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsBlocking reports whether a booking in this status counts toward
// conflict detection. checked_out, completed, cancelled and no_show
// never block future slots.
func (s BookingStatus) IsBlocking() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn:
		return true
	}
	return false
}

// BlockingStatuses returns the set of statuses that participate in
// overlap checks.
func BlockingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn}
}

// SourceStatuses returns every status from which event is a legal transition.
func SourceStatuses(event TransitionEvent) []BookingStatus {
	var sources []BookingStatus
	for _, s := range AllBookingStatuses {
		if _, ok := transitions[s][event]; ok {
			sources = append(sources, s)
		}
	}
	return sources
}

type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

type Booking struct {
	ID               uuid.UUID         `json:"id"`
	BookingNumber    string            `json:"booking_number"`
	TenantID         int32             `json:"tenant_id"`
	Kind             BookingKind       `json:"kind"`
	ResourceID       *int32            `json:"resource_id,omitempty"`
	CustomerID       *int32            `json:"customer_id,omitempty"`
	GuestEmail       string            `json:"guest_email,omitempty"`
	StaffID          *int32            `json:"staff_id,omitempty"`
	StartTime        time.Time         `json:"start_time"`
	EndTime          time.Time         `json:"end_time"`
	Status           BookingStatus     `json:"status"`
	TotalAmountCents int32             `json:"total_amount_cents"`
	FinalAmountCents *int32            `json:"final_amount_cents,omitempty"`
	PaymentStatus    PaymentStatus     `json:"payment_status"`
	Notes            string            `json:"notes,omitempty"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	CheckedInAt      *time.Time        `json:"checked_in_at,omitempty"`
	CheckedOutAt     *time.Time        `json:"checked_out_at,omitempty"`
}

// Overlaps tests half-open interval overlap against [start, end).
func (b *Booking) Overlaps(start, end time.Time) bool {
	return start.Before(b.EndTime) && end.After(b.StartTime)
}

// AppendNote adds a line to the booking notes. Notes are append-only;
// existing text is never overwritten.
func (b *Booking) AppendNote(note string) {
	if note == "" {
		return
	}
	if b.Notes == "" {
		b.Notes = note
		return
	}
	b.Notes = b.Notes + "\n" + note
}

// FormatBookingNumber builds the human-readable booking number, e.g.
// BK-20260301-007. The sequence is scoped to (tenant, day, prefix).
func FormatBookingNumber(kind BookingKind, day time.Time, seq int32) string {
	return fmt.Sprintf("%s-%s-%03d", kind.NumberPrefix(), day.Format("20060102"), seq)
}
