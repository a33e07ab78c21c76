package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/logger"
)

type errorBody struct {
	Kind                     domain.ErrorKind       `json:"kind"`
	Message                  string                 `json:"message"`
	ConflictingBookingNumber string                 `json:"conflicting_booking_number,omitempty"`
	FromStatus               domain.BookingStatus   `json:"from_status,omitempty"`
	Event                    domain.TransitionEvent `json:"event,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// respondError maps engine error kinds to HTTP status codes. Conflicts and
// invalid transitions are 409 so clients can distinguish "re-pick a slot"
// from the retryable 503 of an Unavailable failure.
func respondError(w http.ResponseWriter, err error) {
	var engineErr *domain.Error
	if !errors.As(err, &engineErr) {
		logger.Error("Unhandled internal error", "error", err)
		respondJSON(w, http.StatusInternalServerError, map[string]errorBody{
			"error": {Kind: domain.ErrKindUnavailable, Message: "internal error"},
		})
		return
	}

	status := http.StatusInternalServerError
	switch engineErr.Kind {
	case domain.ErrKindNotFound:
		status = http.StatusNotFound
	case domain.ErrKindConflict, domain.ErrKindInvalidTransition:
		status = http.StatusConflict
	case domain.ErrKindValidation:
		status = http.StatusBadRequest
	case domain.ErrKindPermissionDenied:
		status = http.StatusForbidden
	case domain.ErrKindUnavailable:
		status = http.StatusServiceUnavailable
	}

	respondJSON(w, status, map[string]errorBody{
		"error": {
			Kind:                     engineErr.Kind,
			Message:                  engineErr.Message,
			ConflictingBookingNumber: engineErr.ConflictingBookingNumber,
			FromStatus:               engineErr.FromStatus,
			Event:                    engineErr.Event,
		},
	})
}
