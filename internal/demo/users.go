package demo

import (
	"time"

	"github.com/agric-empower/portal/internal/service/profile"
)

// User is one row of the admin users table.
type User struct {
	FullName  string       `json:"fullName"`
	Email     string       `json:"email"`
	Role      profile.Role `json:"role"`
	CreatedAt time.Time    `json:"createdAt"`
	Active    bool         `json:"active"`
}

const day = 24 * time.Hour

// GenerateUserList returns the fixed five-user directory, aged relative to now.
func GenerateUserList(now time.Time) []User {
	seed := []struct {
		name, email string
		role        profile.Role
		age         int
	}{
		{"John Doe", "john.doe@agric-empower.org", profile.RoleFarmer, 7},
		{"Jane Smith", "jane.smith@agric-empower.org", profile.RoleFarmer, 14},
		{"Mike Johnson", "mike.johnson@agric-empower.org", profile.RoleAdmin, 21},
		{"Sarah Wilson", "sarah.wilson@agric-empower.org", profile.RoleFarmer, 3},
		{"David Brown", "david.brown@agric-empower.org", profile.RoleFarmer, 10},
	}
	users := make([]User, len(seed))
	for i, s := range seed {
		users[i] = User{
			FullName:  s.name,
			Email:     s.email,
			Role:      s.role,
			CreatedAt: now.Add(-time.Duration(s.age) * day),
			Active:    true,
		}
	}
	return users
}

// CountRoles tallies farmers and admins. Other roles are ignored.
func CountRoles(users []User) (farmers, admins int) {
	for _, u := range users {
		switch u.Role {
		case profile.RoleFarmer:
			farmers++
		case profile.RoleAdmin:
			admins++
		}
	}
	return farmers, admins
}
