package domain

// Actor identifies who is performing an operation and which tenant the
// operation is scoped to. It is passed explicitly to every service method;
// there is no ambient current-user state.
type Actor struct {
	TenantID int32
	UserID   int32
	Roles    []string
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// WidgetActor builds the anonymous actor used on the public-widget path.
func WidgetActor(tenantID int32) Actor {
	return Actor{TenantID: tenantID, Roles: []string{"widget"}}
}
