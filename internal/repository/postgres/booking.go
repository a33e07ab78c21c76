package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/logger"
	"bizsuite-booking-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const bookingColumns = `id, booking_number, tenant_id, kind, resource_id, customer_id, guest_email, staff_id,
	        start_time, end_time, status, total_amount_cents, final_amount_cents, payment_status,
	        notes, metadata, created_at, updated_at, checked_in_at, checked_out_at`

// overlapPredicate is the half-open interval overlap test shared by every
// conflict query: [start, end) overlaps [other.start, other.end) iff
// start < other.end AND end > other.start.
const overlapPredicate = `start_time < $4 AND end_time > $3`

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// slotLockKey derives the advisory-lock key serializing check-and-create for
// one (tenant, resource) pair.
func slotLockKey(tenantID, resourceID int32) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "booking-slot:%d:%d", tenantID, resourceID)
	return int64(h.Sum64())
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Resource-less appointments cannot double-book anything; only guard
	// the interval when a resource is referenced.
	if b.ResourceID != nil {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, slotLockKey(b.TenantID, *b.ResourceID)); err != nil {
			return err
		}

		query := `SELECT booking_number FROM bookings
		          WHERE tenant_id = $1 AND resource_id = $2 AND status = ANY($5) AND ` + overlapPredicate + `
		          ORDER BY start_time LIMIT 1`
		var conflictNumber string
		err := tx.QueryRowContext(ctx, query, b.TenantID, *b.ResourceID, b.StartTime, b.EndTime,
			pq.Array(statusStrings(domain.BlockingStatuses()))).Scan(&conflictNumber)
		switch {
		case err == nil:
			return domain.NewSchedulingConflict(conflictNumber)
		case err != sql.ErrNoRows:
			return err
		}
	}

	// Atomic per-(tenant, day, prefix) counter; never re-derived from a
	// row count, so concurrent creates cannot collide.
	now := time.Now().UTC()
	var seq int32
	seqQuery := `INSERT INTO booking_sequences (tenant_id, seq_date, prefix, seq)
	             VALUES ($1, $2, $3, 1)
	             ON CONFLICT (tenant_id, seq_date, prefix)
	             DO UPDATE SET seq = booking_sequences.seq + 1
	             RETURNING seq`
	if err := tx.QueryRowContext(ctx, seqQuery, b.TenantID, now.Format("2006-01-02"), b.Kind.NumberPrefix()).Scan(&seq); err != nil {
		return err
	}
	b.BookingNumber = domain.FormatBookingNumber(b.Kind, now, seq)

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = now
	b.UpdatedAt = now

	metadata, err := json.Marshal(b.Metadata)
	if err != nil {
		return err
	}

	insert := `INSERT INTO bookings (id, booking_number, tenant_id, kind, resource_id, customer_id, guest_email, staff_id,
	               start_time, end_time, status, total_amount_cents, final_amount_cents, payment_status,
	               notes, metadata, created_at, updated_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	logger.DatabaseCall("INSERT", "bookings", "bookingNumber", b.BookingNumber, "tenantID", b.TenantID)
	_, err = tx.ExecContext(ctx, insert, b.ID, b.BookingNumber, b.TenantID, b.Kind, b.ResourceID, b.CustomerID,
		b.GuestEmail, b.StaffID, b.StartTime, b.EndTime, b.Status, b.TotalAmountCents, b.FinalAmountCents,
		b.PaymentStatus, b.Notes, metadata, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return mapInsertError(err)
	}

	return tx.Commit()
}

// mapInsertError translates storage-level constraint violations into engine
// errors. The exclusion constraint on (tenant, resource, interval) is the
// backstop for the in-transaction overlap check.
func mapInsertError(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23P01": // exclusion_violation
			return domain.NewSchedulingConflict("another booking")
		case "23505": // unique_violation
			return domain.NewUnavailable("booking insert", err)
		}
	}
	return err
}

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	var metadata []byte
	err := row.Scan(&b.ID, &b.BookingNumber, &b.TenantID, &b.Kind, &b.ResourceID, &b.CustomerID, &b.GuestEmail,
		&b.StaffID, &b.StartTime, &b.EndTime, &b.Status, &b.TotalAmountCents, &b.FinalAmountCents,
		&b.PaymentStatus, &b.Notes, &metadata, &b.CreatedAt, &b.UpdatedAt, &b.CheckedInAt, &b.CheckedOutAt)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &b.Metadata); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *bookingRepository) GetByID(ctx context.Context, tenantID int32, id uuid.UUID) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tenant_id = $1 AND id = $2`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, tenantID, id))
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("booking", id)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) List(ctx context.Context, tenantID int32, filter repository.BookingFilter) ([]domain.Booking, int32, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE tenant_id = $1`
	args := []any{tenantID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.ResourceID != nil {
		args = append(args, *filter.ResourceID)
		query += fmt.Sprintf(" AND resource_id = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND start_time >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND start_time <= $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		query += fmt.Sprintf(" AND (booking_number ILIKE $%d OR guest_email ILIKE $%d)", len(args), len(args))
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") AS sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	args = append(args, pageSize, (page-1)*pageSize)
	query += fmt.Sprintf(" ORDER BY start_time DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, count, rows.Err()
}

func (r *bookingRepository) ListOverlapping(ctx context.Context, tenantID, resourceID int32, start, end time.Time, excludeID *uuid.UUID) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings
	          WHERE tenant_id = $1 AND resource_id = $2 AND status = ANY($5) AND ` + overlapPredicate
	args := []any{tenantID, resourceID, start, end, pq.Array(statusStrings(domain.BlockingStatuses()))}
	if excludeID != nil {
		args = append(args, *excludeID)
		query += fmt.Sprintf(" AND id <> $%d", len(args))
	}
	query += " ORDER BY start_time"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, b *domain.Booking, allowedFrom []domain.BookingStatus) (bool, error) {
	metadata, err := json.Marshal(b.Metadata)
	if err != nil {
		return false, err
	}
	b.UpdatedAt = time.Now().UTC()

	// Compare-and-swap: the precondition travels with the write so a
	// concurrent transition cannot slip between a read and the update.
	query := `UPDATE bookings
	          SET status = $1, notes = $2, metadata = $3, final_amount_cents = $4, payment_status = $5,
	              checked_in_at = $6, checked_out_at = $7, updated_at = $8
	          WHERE tenant_id = $9 AND id = $10 AND status = ANY($11)`
	logger.DatabaseCall("UPDATE", "bookings", "bookingID", b.ID, "status", b.Status)
	res, err := r.db.ExecContext(ctx, query, b.Status, b.Notes, metadata, b.FinalAmountCents, b.PaymentStatus,
		b.CheckedInAt, b.CheckedOutAt, b.UpdatedAt, b.TenantID, b.ID, pq.Array(statusStrings(allowedFrom)))
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (r *bookingRepository) AnyCheckedIn(ctx context.Context, tenantID, resourceID int32) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings WHERE tenant_id = $1 AND resource_id = $2 AND status = $3)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, tenantID, resourceID, domain.BookingStatusCheckedIn).Scan(&exists)
	return exists, err
}
