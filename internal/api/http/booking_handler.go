package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
	"bizsuite-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	Kind             domain.BookingKind `json:"kind"`
	ResourceID       *int32             `json:"resource_id"`
	CustomerID       *int32             `json:"customer_id"`
	GuestName        string             `json:"guest_name"`
	GuestEmail       string             `json:"guest_email"`
	GuestPhone       string             `json:"guest_phone"`
	StaffID          *int32             `json:"staff_id"`
	StartTime        time.Time          `json:"start_time"`
	EndTime          time.Time          `json:"end_time"`
	TotalAmountCents int32              `json:"total_amount_cents"`
	Notes            string             `json:"notes"`
	Metadata         map[string]string  `json:"metadata"`
	Confirmed        bool               `json:"confirmed"`
}

func (req *createBookingRequest) toInput() service.CreateBookingInput {
	return service.CreateBookingInput{
		Kind:             req.Kind,
		ResourceID:       req.ResourceID,
		CustomerID:       req.CustomerID,
		GuestName:        req.GuestName,
		GuestEmail:       req.GuestEmail,
		GuestPhone:       req.GuestPhone,
		StaffID:          req.StaffID,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		TotalAmountCents: req.TotalAmountCents,
		Notes:            req.Notes,
		Metadata:         req.Metadata,
		Confirmed:        req.Confirmed,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidation("invalid request body: %v", err))
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), actor, req.toInput())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) CreatePublicBooking(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidation("invalid request body: %v", err))
		return
	}

	// The widget path ignores staff-only fields.
	input := req.toInput()
	input.StaffID = nil
	input.Confirmed = false

	booking, err := h.bookingSvc.CreatePublicBooking(r.Context(), actor.TenantID, input)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.NewValidation("invalid booking id"))
		return
	}

	booking, err := h.bookingSvc.GetBooking(r.Context(), actor, id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	filter, err := parseBookingFilter(r)
	if err != nil {
		respondError(w, err)
		return
	}

	bookings, total, err := h.bookingSvc.ListBookings(r.Context(), actor, filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"bookings": bookings,
		"total":    total,
	})
}

func parseBookingFilter(r *http.Request) (repository.BookingFilter, error) {
	q := r.URL.Query()
	filter := repository.BookingFilter{
		Status: domain.BookingStatus(q.Get("status")),
		Search: q.Get("search"),
	}

	if v := q.Get("resource_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return filter, domain.NewValidation("invalid resource_id %q", v)
		}
		rid := int32(id)
		filter.ResourceID = &rid
	}
	if v := q.Get("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, domain.NewValidation("invalid from date %q", v)
		}
		filter.From = &from
	}
	if v := q.Get("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filter, domain.NewValidation("invalid to date %q", v)
		}
		// Inclusive upper bound: cover the whole day.
		to = to.Add(24*time.Hour - time.Nanosecond)
		filter.To = &to
	}
	if v := q.Get("page"); v != "" {
		page, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return filter, domain.NewValidation("invalid page %q", v)
		}
		filter.Page = int32(page)
	}
	if v := q.Get("page_size"); v != "" {
		size, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return filter, domain.NewValidation("invalid page_size %q", v)
		}
		filter.PageSize = int32(size)
	}
	return filter, nil
}

type transitionRequest struct {
	Event            domain.TransitionEvent `json:"event"`
	FinalAmountCents *int32                 `json:"final_amount_cents"`
	PaymentStatus    domain.PaymentStatus   `json:"payment_status"`
	Reason           string                 `json:"reason"`
	IdentityRef      string                 `json:"identity_ref"`
	KeyRef           string                 `json:"key_ref"`
}

func (h *BookingHandler) TransitionBooking(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		respondError(w, domain.NewValidation("invalid booking id"))
		return
	}

	var req transitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidation("invalid request body: %v", err))
		return
	}
	if req.Event == "" {
		respondError(w, domain.NewValidation("event is required"))
		return
	}

	booking, err := h.bookingSvc.TransitionBooking(r.Context(), actor, id, req.Event, service.TransitionInput{
		FinalAmountCents: req.FinalAmountCents,
		PaymentStatus:    req.PaymentStatus,
		Reason:           req.Reason,
		IdentityRef:      req.IdentityRef,
		KeyRef:           req.KeyRef,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, booking)
}
