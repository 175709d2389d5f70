package profile

import "strings"

// RoleResolver decides which role a login email gets.
type RoleResolver interface {
	Resolve(email string) Role
}

// EmailRoleResolver is the demo placeholder: any email containing "admin"
// becomes an admin. It grants nothing beyond which dashboard is shown and
// must not gate anything sensitive.
type EmailRoleResolver struct{}

// Resolve returns RoleAdmin iff email contains "admin".
func (EmailRoleResolver) Resolve(email string) Role {
	if strings.Contains(email, "admin") {
		return RoleAdmin
	}
	return RoleFarmer
}

// FixedRoleResolver always returns Role.
type FixedRoleResolver struct {
	Role Role
}

// Resolve returns the fixed role.
func (r FixedRoleResolver) Resolve(string) Role {
	return r.Role
}
