package postgres

import (
	"context"
	"database/sql"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
)

type tenantRepository struct {
	db *sql.DB
}

func NewTenantRepository(db *sql.DB) repository.TenantRepository {
	return &tenantRepository{db: db}
}

func (r *tenantRepository) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	t := &domain.Tenant{}
	query := `SELECT id, name, contact_email, widget_key_hash, is_active, created_at FROM tenants WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&t.ID, &t.Name, &t.ContactEmail, &t.WidgetKeyHash, &t.IsActive, &t.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("tenant", id)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}
