package http

import (
	"net/http"

	"bizsuite-booking-backend/internal/security"

	"github.com/gorilla/mux"
)

// NewRouter wires every engine operation onto the HTTP surface. Staff
// routes require a Bearer token plus the capability named per route; public
// widget routes require the per-tenant widget key.
func NewRouter(
	auth *AuthMiddleware,
	bookings *BookingHandler,
	availability *AvailabilityHandler,
	resources *ResourceHandler,
	notifications *NotificationHandler,
) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	public := r.PathPrefix("/api/v1/public").Subrouter()
	public.Use(auth.WidgetAuth)
	public.HandleFunc("/slots", availability.ListSlots).Methods(http.MethodGet)
	public.HandleFunc("/bookings", bookings.CreatePublicBooking).Methods(http.MethodPost)

	staff := r.PathPrefix("/api/v1").Subrouter()
	staff.Use(auth.StaffAuth)
	staff.HandleFunc("/availability/slots", auth.Require(security.CapBookingsRead, availability.ListSlots)).Methods(http.MethodGet)
	staff.HandleFunc("/availability/check", auth.Require(security.CapBookingsRead, availability.CheckAvailability)).Methods(http.MethodPost)

	staff.HandleFunc("/bookings", auth.Require(security.CapBookingsWrite, bookings.CreateBooking)).Methods(http.MethodPost)
	staff.HandleFunc("/bookings", auth.Require(security.CapBookingsRead, bookings.ListBookings)).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{id}", auth.Require(security.CapBookingsRead, bookings.GetBooking)).Methods(http.MethodGet)
	staff.HandleFunc("/bookings/{id}/transitions", auth.Require(security.CapBookingsTransition, bookings.TransitionBooking)).Methods(http.MethodPost)

	staff.HandleFunc("/resources", auth.Require(security.CapBookingsRead, resources.ListResources)).Methods(http.MethodGet)
	staff.HandleFunc("/resources/{id}/status", auth.Require(security.CapBookingsRead, resources.GetStatus)).Methods(http.MethodGet)
	staff.HandleFunc("/resources/{id}/status", auth.Require(security.CapResourcesManage, resources.OverrideStatus)).Methods(http.MethodPut)
	staff.HandleFunc("/resources/{id}/status", auth.Require(security.CapResourcesManage, resources.MarkClean)).Methods(http.MethodDelete)

	staff.HandleFunc("/resources/{id}/availability-templates", auth.Require(security.CapBookingsRead, availability.GetTemplates)).Methods(http.MethodGet)
	staff.HandleFunc("/resources/{id}/availability-templates", auth.Require(security.CapTemplatesManage, availability.PutTemplate)).Methods(http.MethodPut)

	staff.HandleFunc("/notifications", auth.Require(security.CapBookingsRead, notifications.ListNotifications)).Methods(http.MethodGet)
	staff.HandleFunc("/notifications/{id}/read", auth.Require(security.CapBookingsRead, notifications.MarkRead)).Methods(http.MethodPost)

	return r
}
