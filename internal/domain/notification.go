package domain

import "time"

// Notification is an in-app record of a booking lifecycle event, written by
// the notification sink alongside the outbound email.
type Notification struct {
	ID         int32             `json:"id"`
	TenantID   int32             `json:"tenant_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	Attributes map[string]string `json:"attributes,omitempty"`
	IsRead     bool              `json:"is_read"`
	CreatedAt  time.Time         `json:"created_at"`
}
