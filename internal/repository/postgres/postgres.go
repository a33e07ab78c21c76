package postgres

import (
	"database/sql"

	"bizsuite-booking-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookingRepository
	repository.ResourceRepository
	repository.CustomerRepository
	repository.TenantRepository
	repository.AvailabilityTemplateRepository
	repository.NotificationRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                             db,
		BookingRepository:              NewBookingRepository(db),
		ResourceRepository:             NewResourceRepository(db),
		CustomerRepository:             NewCustomerRepository(db),
		TenantRepository:               NewTenantRepository(db),
		AvailabilityTemplateRepository: NewAvailabilityTemplateRepository(db),
		NotificationRepository:         NewNotificationRepository(db),
	}
}
