package jobs

import (
	"context"
	"time"

	"bizsuite-booking-backend/internal/domain"
	"bizsuite-booking-backend/internal/logger"
)

// SendBookingReminders emails guests whose confirmed bookings start tomorrow.
func (jr *JobRunner) SendBookingReminders() {
	jr.runWithRecovery("SendBookingReminders", func() {
		ctx := context.Background()

		windowStart := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
		windowEnd := windowStart.Add(24 * time.Hour)

		query := `
			SELECT booking_number, tenant_id, guest_email, start_time, end_time
			FROM bookings
			WHERE status = $1
			  AND start_time >= $2 AND start_time < $3
			  AND guest_email <> ''
		`
		rows, err := jr.db.QueryContext(ctx, query, domain.BookingStatusConfirmed, windowStart, windowEnd)
		if err != nil {
			logger.Error("Failed to query bookings for reminders", "error", err)
			return
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var b domain.Booking
			if err := rows.Scan(&b.BookingNumber, &b.TenantID, &b.GuestEmail, &b.StartTime, &b.EndTime); err != nil {
				logger.Error("Failed to scan booking for reminder", "error", err)
				continue
			}
			if err := jr.services.Email.SendBookingReminder(ctx, b.GuestEmail, "Guest", &b); err != nil {
				logger.Error("Failed to send booking reminder", "booking", b.BookingNumber, "error", err)
				continue
			}
			count++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating reminder bookings", "error", err)
			return
		}

		logger.Info("Sent booking reminders", "count", count)
	})
}

// SendPendingDigest emails each tenant's contact address a count of bookings
// still awaiting confirmation.
func (jr *JobRunner) SendPendingDigest() {
	jr.runWithRecovery("SendPendingDigest", func() {
		ctx := context.Background()

		query := `
			SELECT t.id, t.name, t.contact_email, count(*)
			FROM bookings b
			JOIN tenants t ON t.id = b.tenant_id
			WHERE b.status = $1 AND t.is_active AND t.contact_email <> ''
			GROUP BY t.id, t.name, t.contact_email
		`
		rows, err := jr.db.QueryContext(ctx, query, domain.BookingStatusPending)
		if err != nil {
			logger.Error("Failed to query pending booking counts", "error", err)
			return
		}
		defer rows.Close()

		sent := 0
		for rows.Next() {
			var tenantID int32
			var name, email string
			var pending int32
			if err := rows.Scan(&tenantID, &name, &email, &pending); err != nil {
				logger.Error("Failed to scan pending digest row", "error", err)
				continue
			}
			if err := jr.services.Email.SendStaffDigest(ctx, email, name, pending); err != nil {
				logger.Error("Failed to send pending digest", "tenant_id", tenantID, "error", err)
				continue
			}
			sent++
		}
		if err := rows.Err(); err != nil {
			logger.Error("Error iterating pending digest rows", "error", err)
			return
		}

		logger.Info("Sent pending digests", "count", sent)
	})
}
