package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AvailabilityHandler struct {
	availSvc service.AvailabilityService
}

func NewAvailabilityHandler(availSvc service.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availSvc: availSvc}
}

func (h *AvailabilityHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	q := r.URL.Query()

	date, err := time.Parse("2006-01-02", q.Get("date"))
	if err != nil {
		respondError(w, domain.NewValidation("invalid or missing date %q", q.Get("date")))
		return
	}

	var resourceID *int32
	if v := q.Get("resource_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			respondError(w, domain.NewValidation("invalid resource_id %q", v))
			return
		}
		rid := int32(id)
		resourceID = &rid
	}

	slots, err := h.availSvc.ListAvailableSlots(r.Context(), actor, resourceID, date)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"slots": slots})
}

type checkAvailabilityRequest struct {
	ResourceID       int32      `json:"resource_id"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          time.Time  `json:"end_time"`
	ExcludeBookingID *uuid.UUID `json:"exclude_booking_id"`
}

func (h *AvailabilityHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	var req checkAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidation("invalid request body: %v", err))
		return
	}

	result, err := h.availSvc.CheckAvailability(r.Context(), actor, req.ResourceID, req.StartTime, req.EndTime, req.ExcludeBookingID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *AvailabilityHandler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	resourceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, domain.NewValidation("invalid resource id"))
		return
	}

	templates, err := h.availSvc.GetTemplates(r.Context(), actor, int32(resourceID))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"templates": templates})
}

type putTemplateRequest struct {
	Weekday     int    `json:"weekday"`
	IsAvailable bool   `json:"is_available"`
	OpensAt     string `json:"opens_at"`
	ClosesAt    string `json:"closes_at"`
}

func (h *AvailabilityHandler) PutTemplate(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	resourceID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, domain.NewValidation("invalid resource id"))
		return
	}

	var req putTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidation("invalid request body: %v", err))
		return
	}

	tmpl := &domain.AvailabilityTemplate{
		ResourceID:  int32(resourceID),
		Weekday:     time.Weekday(req.Weekday),
		IsAvailable: req.IsAvailable,
		OpensAt:     req.OpensAt,
		ClosesAt:    req.ClosesAt,
	}
	if err := h.availSvc.PutTemplate(r.Context(), actor, tmpl); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tmpl)
}
