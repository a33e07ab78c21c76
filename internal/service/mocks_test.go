package service_test

import (
	"context"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
	"bizsuite-booking-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, tenantID int32, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context, tenantID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, int32(args.Int(1)), args.Error(2)
	}
	return args.Get(0).([]domain.Booking), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookingRepo) ListOverlapping(ctx context.Context, tenantID, resourceID int32, start, end time.Time, excludeID *uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, tenantID, resourceID, start, end, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) UpdateStatus(ctx context.Context, b *domain.Booking, allowedFrom []domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, b, allowedFrom)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingRepo) AnyCheckedIn(ctx context.Context, tenantID, resourceID int32) (bool, error) {
	args := m.Called(ctx, tenantID, resourceID)
	return args.Bool(0), args.Error(1)
}

// MockResourceRepo
type MockResourceRepo struct {
	mock.Mock
}

func (m *MockResourceRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Resource, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) ListActive(ctx context.Context, tenantID int32) ([]domain.Resource, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}
func (m *MockResourceRepo) SetStatus(ctx context.Context, tenantID, id int32, status domain.ResourceStatus) error {
	args := m.Called(ctx, tenantID, id, status)
	return args.Error(0)
}

// MockCustomerRepo
type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepo) GetByID(ctx context.Context, tenantID, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerRepo) GetByEmail(ctx context.Context, tenantID int32, email string) (*domain.Customer, error) {
	args := m.Called(ctx, tenantID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

// MockTemplateRepo
type MockTemplateRepo struct {
	mock.Mock
}

func (m *MockTemplateRepo) Get(ctx context.Context, tenantID, resourceID int32, weekday time.Weekday) (*domain.AvailabilityTemplate, error) {
	args := m.Called(ctx, tenantID, resourceID, weekday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityTemplate), args.Error(1)
}
func (m *MockTemplateRepo) ListByResource(ctx context.Context, tenantID, resourceID int32) ([]domain.AvailabilityTemplate, error) {
	args := m.Called(ctx, tenantID, resourceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AvailabilityTemplate), args.Error(1)
}
func (m *MockTemplateRepo) Upsert(ctx context.Context, t *domain.AvailabilityTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, tenantID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, tenantID, id int32) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, email, name string, b *domain.Booking) error {
	args := m.Called(ctx, email, name, b)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCancellation(ctx context.Context, email, name string, b *domain.Booking, reason string) error {
	args := m.Called(ctx, email, name, b, reason)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingReminder(ctx context.Context, email, name string, b *domain.Booking) error {
	args := m.Called(ctx, email, name, b)
	return args.Error(0)
}
func (m *MockEmailService) SendStaffDigest(ctx context.Context, email, tenantName string, pendingCount int32) error {
	args := m.Called(ctx, email, tenantName, pendingCount)
	return args.Error(0)
}

// MockNotifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, event service.NotificationEvent, b *domain.Booking, detail string) {
	m.Called(ctx, event, b, detail)
}
