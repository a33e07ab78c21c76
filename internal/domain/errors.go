package domain

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrKindNotFound          ErrorKind = "not_found"
	ErrKindConflict          ErrorKind = "scheduling_conflict"
	ErrKindInvalidTransition ErrorKind = "invalid_transition"
	ErrKindValidation        ErrorKind = "validation"
	ErrKindPermissionDenied  ErrorKind = "permission_denied"
	ErrKindUnavailable       ErrorKind = "unavailable"
)

// Error is the structured failure returned by every engine operation.
// SchedulingConflict carries the conflicting booking number so callers can
// explain the failure to an end user; Unavailable marks retryable
// infrastructure failures and is never used for conflicts.
type Error struct {
	Kind    ErrorKind
	Message string

	// Conflict detail
	ConflictingBookingNumber string

	// Transition detail
	FromStatus BookingStatus
	Event      TransitionEvent

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func NewNotFound(entity string, id any) *Error {
	return &Error{Kind: ErrKindNotFound, Message: fmt.Sprintf("%s %v not found", entity, id)}
}

func NewSchedulingConflict(bookingNumber string) *Error {
	return &Error{
		Kind:                     ErrKindConflict,
		Message:                  fmt.Sprintf("interval conflicts with booking %s", bookingNumber),
		ConflictingBookingNumber: bookingNumber,
	}
}

func NewInvalidTransition(from BookingStatus, event TransitionEvent) *Error {
	return &Error{
		Kind:       ErrKindInvalidTransition,
		Message:    fmt.Sprintf("cannot apply %s to booking in status %s", event, from),
		FromStatus: from,
		Event:      event,
	}
}

func NewValidation(format string, args ...any) *Error {
	return &Error{Kind: ErrKindValidation, Message: fmt.Sprintf(format, args...)}
}

func NewPermissionDenied(message string) *Error {
	return &Error{Kind: ErrKindPermissionDenied, Message: message}
}

func NewUnavailable(op string, cause error) *Error {
	return &Error{Kind: ErrKindUnavailable, Message: op + " failed", cause: cause}
}

// KindOf extracts the error kind, defaulting to Unavailable for errors that
// did not originate in the engine.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ErrKindUnavailable
}

func IsKind(err error, kind ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
