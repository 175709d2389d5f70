package users

import (
	"github.com/agric-empower/portal/internal/demo"
	"github.com/agric-empower/portal/internal/platform/timeutil"
)

// User is one demo directory entry.
type User struct {
	FullName  string        `json:"fullName"  doc:"Display name"       example:"Mike Johnson"`
	Email     string        `json:"email"     doc:"Email address"      example:"mike.johnson@agric-empower.org"`
	Role      string        `json:"role"      doc:"Portal role"        example:"admin"`
	CreatedAt timeutil.Time `json:"createdAt" doc:"Registration time"  example:"2024-01-15T10:30:00.000Z"`
	Active    bool          `json:"active"    doc:"Account is active"  example:"true"`
}

// RoleCounts summarizes the directory by role.
type RoleCounts struct {
	Farmers int `json:"farmers" example:"4"`
	Admins  int `json:"admins"  example:"1"`
}

func fromDemo(u demo.User) User {
	return User{
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: timeutil.NewTime(u.CreatedAt),
		Active:    u.Active,
	}
}
