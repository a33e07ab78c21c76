package domain

import "time"

// Customer is an identity record from the customer directory. Guests who
// book through the public widget are auto-created here by email.
type Customer struct {
	ID        int32     `json:"id"`
	TenantID  int32     `json:"tenant_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Tenant is one business account. All booking data is partitioned by tenant.
type Tenant struct {
	ID            int32     `json:"id"`
	Name          string    `json:"name"`
	ContactEmail  string    `json:"contact_email"`
	WidgetKeyHash string    `json:"-"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
