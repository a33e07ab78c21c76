package security

import "bizsuite-booking-backend/internal/domain"

// Capability names one operation class the engine exposes. Role checks
// happen once, here, before dispatch; scheduling logic never branches on
// roles.
type Capability string

const (
	CapBookingsRead       Capability = "bookings:read"
	CapBookingsWrite      Capability = "bookings:write"
	CapBookingsTransition Capability = "bookings:transition"
	CapResourcesManage    Capability = "resources:manage"
	CapTemplatesManage    Capability = "templates:manage"
)

const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleFrontDesk = "front_desk"
	RoleViewer    = "viewer"
	RoleWidget    = "widget"
)

// roleCapabilities maps each role to what it may do.
var roleCapabilities = map[string][]Capability{
	RoleAdmin:     {CapBookingsRead, CapBookingsWrite, CapBookingsTransition, CapResourcesManage, CapTemplatesManage},
	RoleManager:   {CapBookingsRead, CapBookingsWrite, CapBookingsTransition, CapResourcesManage, CapTemplatesManage},
	RoleFrontDesk: {CapBookingsRead, CapBookingsWrite, CapBookingsTransition},
	RoleViewer:    {CapBookingsRead},
	RoleWidget:    {}, // widget requests go through dedicated public endpoints
}

// Allowed is the single capability predicate applied before dispatch.
func Allowed(actor domain.Actor, cap Capability) bool {
	for _, role := range actor.Roles {
		for _, c := range roleCapabilities[role] {
			if c == cap {
				return true
			}
		}
	}
	return false
}

// Require returns a PermissionDenied error when the actor lacks the
// capability.
func Require(actor domain.Actor, cap Capability) error {
	if !Allowed(actor, cap) {
		return domain.NewPermissionDenied("missing capability " + string(cap))
	}
	return nil
}
