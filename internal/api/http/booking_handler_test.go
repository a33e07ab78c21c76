package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "bizsuite-booking-backend/internal/api/http"
	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
	"bizsuite-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, actor domain.Actor, in service.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, actor, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) CreatePublicBooking(ctx context.Context, tenantID int32, in service.CreateBookingInput) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) GetBooking(ctx context.Context, actor domain.Actor, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, actor, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListBookings(ctx context.Context, actor domain.Actor, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, actor, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingService) TransitionBooking(ctx context.Context, actor domain.Actor, id uuid.UUID, event domain.TransitionEvent, in service.TransitionInput) (*domain.Booking, error) {
	args := m.Called(ctx, actor, id, event, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func staffRequest(method, target string, body []byte) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	actor := domain.Actor{TenantID: 1, UserID: 7, Roles: []string{"front_desk"}}
	return req.WithContext(httpapi.WithActor(req.Context(), actor))
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]map[string]any {
	t.Helper()
	var body map[string]map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("error decoding response body: %v", err)
	}
	return body
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := httpapi.NewBookingHandler(svc)

		booking := &domain.Booking{ID: uuid.New(), BookingNumber: "BK-20260907-001", Status: domain.BookingStatusConfirmed}
		svc.On("CreateBooking", mock.Anything, mock.AnythingOfType("domain.Actor"), mock.AnythingOfType("service.CreateBookingInput")).
			Return(booking, nil)

		payload, _ := json.Marshal(map[string]any{
			"resource_id": 3,
			"start_time":  time.Date(2026, 9, 7, 15, 0, 0, 0, time.UTC),
			"end_time":    time.Date(2026, 9, 8, 11, 0, 0, 0, time.UTC),
			"confirmed":   true,
		})
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, staffRequest(http.MethodPost, "/api/v1/bookings", payload))

		assert.Equal(t, http.StatusCreated, rec.Code)
		var got domain.Booking
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "BK-20260907-001", got.BookingNumber)
	})

	t.Run("Conflict Maps To 409", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := httpapi.NewBookingHandler(svc)

		svc.On("CreateBooking", mock.Anything, mock.AnythingOfType("domain.Actor"), mock.AnythingOfType("service.CreateBookingInput")).
			Return(nil, domain.NewSchedulingConflict("BK-20260907-002"))

		payload, _ := json.Marshal(map[string]any{"resource_id": 3})
		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, staffRequest(http.MethodPost, "/api/v1/bookings", payload))

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "scheduling_conflict", body["error"]["kind"])
		assert.Equal(t, "BK-20260907-002", body["error"]["conflicting_booking_number"])
	})

	t.Run("Malformed Body Maps To 400", func(t *testing.T) {
		handler := httpapi.NewBookingHandler(new(MockBookingService))

		rec := httptest.NewRecorder()
		handler.CreateBooking(rec, staffRequest(http.MethodPost, "/api/v1/bookings", []byte("{not json")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	id := uuid.New()

	t.Run("Not Found Maps To 404", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := httpapi.NewBookingHandler(svc)

		svc.On("GetBooking", mock.Anything, mock.AnythingOfType("domain.Actor"), id).
			Return(nil, domain.NewNotFound("booking", id))

		req := staffRequest(http.MethodGet, "/api/v1/bookings/"+id.String(), nil)
		req = mux.SetURLVars(req, map[string]string{"id": id.String()})
		rec := httptest.NewRecorder()
		handler.GetBooking(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Bad UUID Maps To 400", func(t *testing.T) {
		handler := httpapi.NewBookingHandler(new(MockBookingService))

		req := staffRequest(http.MethodGet, "/api/v1/bookings/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rec := httptest.NewRecorder()
		handler.GetBooking(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	svc := new(MockBookingService)
	handler := httpapi.NewBookingHandler(svc)

	var captured repository.BookingFilter
	svc.On("ListBookings", mock.Anything, mock.AnythingOfType("domain.Actor"), mock.AnythingOfType("repository.BookingFilter")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(repository.BookingFilter)
		}).
		Return([]domain.Booking{}, int32(0), nil)

	rec := httptest.NewRecorder()
	handler.ListBookings(rec, staffRequest(http.MethodGet,
		"/api/v1/bookings?status=confirmed&resource_id=3&from=2026-09-01&to=2026-09-30&page=2&page_size=25", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.BookingStatusConfirmed, captured.Status)
	assert.Equal(t, int32(3), *captured.ResourceID)
	assert.Equal(t, int32(2), captured.Page)
	assert.Equal(t, int32(25), captured.PageSize)
	// "to" covers the whole named day.
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), *captured.From)
	assert.True(t, captured.To.After(time.Date(2026, 9, 30, 23, 59, 59, 0, time.UTC)))
}

func TestBookingHandler_TransitionBooking(t *testing.T) {
	id := uuid.New()

	t.Run("Invalid Transition Maps To 409", func(t *testing.T) {
		svc := new(MockBookingService)
		handler := httpapi.NewBookingHandler(svc)

		svc.On("TransitionBooking", mock.Anything, mock.AnythingOfType("domain.Actor"), id,
			domain.EventCheckIn, mock.AnythingOfType("service.TransitionInput")).
			Return(nil, domain.NewInvalidTransition(domain.BookingStatusCancelled, domain.EventCheckIn))

		payload, _ := json.Marshal(map[string]any{"event": "check_in"})
		req := staffRequest(http.MethodPost, "/api/v1/bookings/"+id.String()+"/transitions", payload)
		req = mux.SetURLVars(req, map[string]string{"id": id.String()})
		rec := httptest.NewRecorder()
		handler.TransitionBooking(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "invalid_transition", body["error"]["kind"])
		assert.Equal(t, "cancelled", body["error"]["from_status"])
		assert.Equal(t, "check_in", body["error"]["event"])
	})

	t.Run("Missing Event Maps To 400", func(t *testing.T) {
		handler := httpapi.NewBookingHandler(new(MockBookingService))

		payload, _ := json.Marshal(map[string]any{"reason": "oops"})
		req := staffRequest(http.MethodPost, "/api/v1/bookings/"+id.String()+"/transitions", payload)
		req = mux.SetURLVars(req, map[string]string{"id": id.String()})
		rec := httptest.NewRecorder()
		handler.TransitionBooking(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_CreatePublicBooking(t *testing.T) {
	svc := new(MockBookingService)
	handler := httpapi.NewBookingHandler(svc)

	var captured service.CreateBookingInput
	booking := &domain.Booking{ID: uuid.New(), BookingNumber: "APT-20260907-001", Status: domain.BookingStatusPending}
	svc.On("CreatePublicBooking", mock.Anything, int32(1), mock.AnythingOfType("service.CreateBookingInput")).
		Run(func(args mock.Arguments) {
			captured = args.Get(2).(service.CreateBookingInput)
		}).
		Return(booking, nil)

	staffID := int32(99)
	payload, _ := json.Marshal(map[string]any{
		"kind":        "appointment",
		"guest_email": "jo@example.com",
		"staff_id":    staffID,
		"confirmed":   true,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/public/bookings", bytes.NewReader(payload))
	req = req.WithContext(httpapi.WithActor(req.Context(), domain.WidgetActor(1)))
	rec := httptest.NewRecorder()
	handler.CreatePublicBooking(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	// Staff-only fields never pass through the widget path.
	assert.Nil(t, captured.StaffID)
	assert.False(t, captured.Confirmed)
	assert.Equal(t, "jo@example.com", captured.GuestEmail)
}
