package postgres

import (
	"context"
	"database/sql"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/repository"
)

type resourceRepository struct {
	db *sql.DB
}

func NewResourceRepository(db *sql.DB) repository.ResourceRepository {
	return &resourceRepository{db: db}
}

const resourceColumns = `id, tenant_id, name, kind, is_active, status, created_at, updated_at`

func (r *resourceRepository) GetByID(ctx context.Context, tenantID, id int32) (*domain.Resource, error) {
	res := &domain.Resource{}
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE tenant_id = $1 AND id = $2`
	err := r.db.QueryRowContext(ctx, query, tenantID, id).Scan(&res.ID, &res.TenantID, &res.Name, &res.Kind,
		&res.IsActive, &res.Status, &res.CreatedAt, &res.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("resource", id)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *resourceRepository) ListActive(ctx context.Context, tenantID int32) ([]domain.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE tenant_id = $1 AND is_active = true ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var resources []domain.Resource
	for rows.Next() {
		var res domain.Resource
		if err := rows.Scan(&res.ID, &res.TenantID, &res.Name, &res.Kind, &res.IsActive, &res.Status,
			&res.CreatedAt, &res.UpdatedAt); err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *resourceRepository) SetStatus(ctx context.Context, tenantID, id int32, status domain.ResourceStatus) error {
	query := `UPDATE resources SET status = $1, updated_at = $2 WHERE tenant_id = $3 AND id = $4`
	res, err := r.db.ExecContext(ctx, query, status, time.Now().UTC(), tenantID, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFound("resource", id)
	}
	return nil
}
