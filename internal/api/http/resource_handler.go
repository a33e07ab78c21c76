package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/service"

	"github.com/gorilla/mux"
)

type ResourceHandler struct {
	statusSvc service.ResourceStatusService
}

func NewResourceHandler(statusSvc service.ResourceStatusService) *ResourceHandler {
	return &ResourceHandler{statusSvc: statusSvc}
}

func resourceIDFromPath(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		return 0, domain.NewValidation("invalid resource id")
	}
	return int32(id), nil
}

func (h *ResourceHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	resources, err := h.statusSvc.ListResources(r.Context(), actor)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"resources": resources})
}

func (h *ResourceHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	resourceID, err := resourceIDFromPath(r)
	if err != nil {
		respondError(w, err)
		return
	}

	status, err := h.statusSvc.DeriveStatus(r.Context(), actor, resourceID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"resource_id": resourceID, "status": status})
}

type overrideStatusRequest struct {
	Status domain.ResourceStatus `json:"status"`
}

func (h *ResourceHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	resourceID, err := resourceIDFromPath(r)
	if err != nil {
		respondError(w, err)
		return
	}

	var req overrideStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidation("invalid request body: %v", err))
		return
	}

	if err := h.statusSvc.OverrideStatus(r.Context(), actor, resourceID, req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"resource_id": resourceID, "status": req.Status})
}

func (h *ResourceHandler) MarkClean(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	resourceID, err := resourceIDFromPath(r)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.statusSvc.MarkClean(r.Context(), actor, resourceID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"resource_id": resourceID, "status": domain.ResourceStatusVacant})
}
