package postgres

import (
	"context"
	"database/sql"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
)

type templateRepository struct {
	db *sql.DB
}

func NewAvailabilityTemplateRepository(db *sql.DB) repository.AvailabilityTemplateRepository {
	return &templateRepository{db: db}
}

const templateColumns = `id, tenant_id, resource_id, weekday, is_available, opens_at, closes_at`

func (r *templateRepository) Get(ctx context.Context, tenantID, resourceID int32, weekday time.Weekday) (*domain.AvailabilityTemplate, error) {
	t := &domain.AvailabilityTemplate{}
	query := `SELECT ` + templateColumns + ` FROM availability_templates
	          WHERE tenant_id = $1 AND resource_id = $2 AND weekday = $3`
	err := r.db.QueryRowContext(ctx, query, tenantID, resourceID, int(weekday)).Scan(
		&t.ID, &t.TenantID, &t.ResourceID, &t.Weekday, &t.IsAvailable, &t.OpensAt, &t.ClosesAt)
	if err == sql.ErrNoRows {
		// No template row means the day is closed; not an error.
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *templateRepository) ListByResource(ctx context.Context, tenantID, resourceID int32) ([]domain.AvailabilityTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM availability_templates
	          WHERE tenant_id = $1 AND resource_id = $2 ORDER BY weekday`
	rows, err := r.db.QueryContext(ctx, query, tenantID, resourceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []domain.AvailabilityTemplate
	for rows.Next() {
		var t domain.AvailabilityTemplate
		if err := rows.Scan(&t.ID, &t.TenantID, &t.ResourceID, &t.Weekday, &t.IsAvailable, &t.OpensAt, &t.ClosesAt); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}

func (r *templateRepository) Upsert(ctx context.Context, t *domain.AvailabilityTemplate) error {
	query := `INSERT INTO availability_templates (tenant_id, resource_id, weekday, is_available, opens_at, closes_at)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          ON CONFLICT (tenant_id, resource_id, weekday)
	          DO UPDATE SET is_available = EXCLUDED.is_available, opens_at = EXCLUDED.opens_at, closes_at = EXCLUDED.closes_at
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, t.TenantID, t.ResourceID, int(t.Weekday), t.IsAvailable, t.OpensAt, t.ClosesAt).Scan(&t.ID)
}
