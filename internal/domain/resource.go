package domain

import "time"

type ResourceStatus string

const (
	ResourceStatusVacant      ResourceStatus = "vacant"
	ResourceStatusOccupied    ResourceStatus = "occupied"
	ResourceStatusDirty       ResourceStatus = "dirty"
	ResourceStatusMaintenance ResourceStatus = "maintenance"
)

// IsManualOverride reports whether the status is operator-set and takes
// precedence over automatic derivation from bookings.
func (s ResourceStatus) IsManualOverride() bool {
	return s == ResourceStatusDirty || s == ResourceStatusMaintenance
}

type ResourceKind string

const (
	ResourceKindRoom    ResourceKind = "room"
	ResourceKindStaff   ResourceKind = "staff"
	ResourceKindGeneric ResourceKind = "generic"
)

// Resource is a bookable unit from the resource directory. Status is a
// derived/cached value; the authoritative occupancy signal is whether a
// checked_in booking currently references the resource.
type Resource struct {
	ID        int32          `json:"id"`
	TenantID  int32          `json:"tenant_id"`
	Name      string         `json:"name"`
	Kind      ResourceKind   `json:"kind"`
	IsActive  bool           `json:"is_active"`
	Status    ResourceStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}
