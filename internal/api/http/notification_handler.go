package http

import (
	"net/http"
	"strconv"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/service"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	noteSvc service.NotificationService
}

func NewNotificationHandler(noteSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{noteSvc: noteSvc}
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())
	q := r.URL.Query()

	var limit, offset int64
	if v := q.Get("limit"); v != "" {
		limit, _ = strconv.ParseInt(v, 10, 32)
	}
	if v := q.Get("offset"); v != "" {
		offset, _ = strconv.ParseInt(v, 10, 32)
	}

	notes, total, err := h.noteSvc.ListNotifications(r.Context(), actor, int32(limit), int32(offset))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"notifications": notes,
		"total":         total,
	})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, _ := ActorFromContext(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil {
		respondError(w, domain.NewValidation("invalid notification id"))
		return
	}

	if err := h.noteSvc.MarkNotificationRead(r.Context(), actor, int32(id)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"id": id, "is_read": true})
}
