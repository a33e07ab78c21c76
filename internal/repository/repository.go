package repository

import (
	"context"
	"time"

	"bizsuite-booking-backend/internal/domain"

	"github.com/google/uuid"
)

// BookingFilter narrows booking listings. Zero values mean "no filter".
type BookingFilter struct {
	Status     domain.BookingStatus
	ResourceID *int32
	From       *time.Time
	To         *time.Time
	Search     string
	Page       int32
	PageSize   int32
}

type BookingRepository interface {
	// Create inserts the booking, assigning its ID and booking number.
	// The insert and the conflict check run in one transaction; a
	// concurrent overlapping insert surfaces as a scheduling conflict.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, tenantID int32, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, tenantID int32, filter BookingFilter) ([]domain.Booking, int32, error)
	ListOverlapping(ctx context.Context, tenantID, resourceID int32, start, end time.Time, excludeID *uuid.UUID) ([]domain.Booking, error)

	// UpdateStatus persists b only when the stored status is still one of
	// allowedFrom. Returns false when another writer got there first.
	UpdateStatus(ctx context.Context, b *domain.Booking, allowedFrom []domain.BookingStatus) (bool, error)
	AnyCheckedIn(ctx context.Context, tenantID, resourceID int32) (bool, error)
}

type ResourceRepository interface {
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Resource, error)
	ListActive(ctx context.Context, tenantID int32) ([]domain.Resource, error)
	SetStatus(ctx context.Context, tenantID, id int32, status domain.ResourceStatus) error
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, tenantID, id int32) (*domain.Customer, error)
	GetByEmail(ctx context.Context, tenantID int32, email string) (*domain.Customer, error)
}

type TenantRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Tenant, error)
}

type AvailabilityTemplateRepository interface {
	// Get returns (nil, nil) when no template row exists for the weekday,
	// meaning the business is closed that day.
	Get(ctx context.Context, tenantID, resourceID int32, weekday time.Weekday) (*domain.AvailabilityTemplate, error)
	ListByResource(ctx context.Context, tenantID, resourceID int32) ([]domain.AvailabilityTemplate, error)
	Upsert(ctx context.Context, t *domain.AvailabilityTemplate) error
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, tenantID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, tenantID, id int32) error
}
