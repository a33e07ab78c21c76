package domain

import (
	"fmt"
	"time"
)

// AvailabilityTemplate bounds slot generation for one resource on one
// weekday. It does not itself reserve anything. A resource with no template
// row for a weekday is closed that day, not open-by-default.
type AvailabilityTemplate struct {
	ID          int32        `json:"id"`
	TenantID    int32        `json:"tenant_id"`
	ResourceID  int32        `json:"resource_id"`
	Weekday     time.Weekday `json:"weekday"`
	IsAvailable bool         `json:"is_available"`
	OpensAt     string       `json:"opens_at"`  // wall clock, "15:04"
	ClosesAt    string       `json:"closes_at"` // wall clock, "15:04"
}

// Window resolves the template's wall-clock bounds onto a concrete date,
// returning the half-open [opens, closes) interval for that day.
func (t *AvailabilityTemplate) Window(date time.Time) (time.Time, time.Time, error) {
	opens, err := time.Parse("15:04", t.OpensAt)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid opens_at %q: %w", t.OpensAt, err)
	}
	closes, err := time.Parse("15:04", t.ClosesAt)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid closes_at %q: %w", t.ClosesAt, err)
	}
	y, m, d := date.Date()
	loc := date.Location()
	start := time.Date(y, m, d, opens.Hour(), opens.Minute(), 0, 0, loc)
	end := time.Date(y, m, d, closes.Hour(), closes.Minute(), 0, 0, loc)
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("template window %s-%s is empty", t.OpensAt, t.ClosesAt)
	}
	return start, end, nil
}

// TimeSlot is one bookable candidate returned by the availability calculator.
type TimeSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Label     string    `json:"label"`
}

// AvailabilityResult is the conflict detector's verdict for one interval.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}
