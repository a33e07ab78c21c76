package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatus_Next(t *testing.T) {
	allowed := map[BookingStatus]map[TransitionEvent]BookingStatus{
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

	// Every (status, event) pair must agree with the table above;
	// terminal statuses accept nothing.
	for _, status := range AllBookingStatuses {
		for _, event := range AllTransitionEvents {
			next, ok := status.Next(event)
			want, wantOK := allowed[status][event]
			assert.Equal(t, wantOK, ok, "%s + %s", status, event)
			if wantOK {
				assert.Equal(t, want, next, "%s + %s", status, event)
			}
		}
	}
}

func TestBookingStatus_IsBlocking(t *testing.T) {
	blocking := map[BookingStatus]bool{
		BookingStatusPending:    true,
		BookingStatusConfirmed:  true,
		BookingStatusCheckedIn:  true,
		BookingStatusCheckedOut: false,
		BookingStatusCompleted:  false,
		BookingStatusCancelled:  false,
		BookingStatusNoShow:     false,
	}
	for status, want := range blocking {
		assert.Equal(t, want, status.IsBlocking(), "%s", status)
	}
	assert.ElementsMatch(t,
		[]BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn},
		BlockingStatuses())
}

func TestSourceStatuses(t *testing.T) {
	assert.ElementsMatch(t,
		[]BookingStatus{BookingStatusPending, BookingStatusConfirmed},
		SourceStatuses(EventCheckIn))
	assert.ElementsMatch(t,
		[]BookingStatus{BookingStatusCheckedIn},
		SourceStatuses(EventCheckOut))
	assert.ElementsMatch(t,
		[]BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusCheckedIn},
		SourceStatuses(EventNoShow))
	assert.ElementsMatch(t,
		[]BookingStatus{BookingStatusCheckedOut},
		SourceStatuses(EventFinalize))
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{
		StartTime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
	}
	at := func(hour, min int) time.Time {
		return time.Date(2026, 9, 7, hour, min, 0, 0, time.UTC)
	}

	assert.True(t, b.Overlaps(at(10, 30), at(11, 30)))
	assert.True(t, b.Overlaps(at(9, 30), at(10, 30)))
	assert.True(t, b.Overlaps(at(10, 15), at(10, 45)))
	assert.True(t, b.Overlaps(at(9, 0), at(12, 0)))

	// Half-open intervals: touching endpoints do not overlap.
	assert.False(t, b.Overlaps(at(11, 0), at(12, 0)))
	assert.False(t, b.Overlaps(at(9, 0), at(10, 0)))
	assert.False(t, b.Overlaps(at(8, 0), at(9, 0)))
}

func TestFormatBookingNumber(t *testing.T) {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "BK-20260301-007", FormatBookingNumber(BookingKindStandard, day, 7))
	assert.Equal(t, "APT-20260301-012", FormatBookingNumber(BookingKindAppointment, day, 12))
	assert.Equal(t, "BK-20260301-123", FormatBookingNumber(BookingKindStandard, day, 123))
	// The counter keeps growing past three digits within a busy day.
	assert.Equal(t, "BK-20260301-1000", FormatBookingNumber(BookingKindStandard, day, 1000))
}

func TestBooking_AppendNote(t *testing.T) {
	b := &Booking{}
	b.AppendNote("first")
	assert.Equal(t, "first", b.Notes)
	b.AppendNote("second")
	assert.Equal(t, "first\nsecond", b.Notes)
	b.AppendNote("")
	assert.Equal(t, "first\nsecond", b.Notes)
}

func TestAvailabilityTemplate_Window(t *testing.T) {
	tmpl := &AvailabilityTemplate{OpensAt: "09:00", ClosesAt: "17:30"}
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

	opens, closes, err := tmpl.Window(date)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC), opens)
	assert.Equal(t, time.Date(2026, 9, 7, 17, 30, 0, 0, time.UTC), closes)

	bad := &AvailabilityTemplate{OpensAt: "17:00", ClosesAt: "09:00"}
	_, _, err = bad.Window(date)
	assert.Error(t, err)

	garbled := &AvailabilityTemplate{OpensAt: "9am", ClosesAt: "17:00"}
	_, _, err = garbled.Window(date)
	assert.Error(t, err)
}
