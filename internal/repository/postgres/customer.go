package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	query := `INSERT INTO customers (tenant_id, name, email, phone, created_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.TenantID, c.Name, c.Email, c.Phone, time.Now().UTC()).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, tenant_id, name, email, phone, created_at FROM customers WHERE tenant_id = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("customer", id)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, tenantID int32, email string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, tenant_id, name, email, phone, created_at FROM customers WHERE tenant_id = $1 AND lower(email) = lower($2)`
	err := r.db.QueryRowContext(ctx, query, tenantID, email).Scan(&c.ID, &c.TenantID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("customer", email)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
