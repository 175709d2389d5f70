// Package profile owns the single profile record a client keeps in its
// local store, and the rules that synthesize one.
package profile

import "errors"

// StorageKey is the local store key holding the serialized profile.
const StorageKey = "sf_user"

// ErrNotFound indicates the client has no usable profile.
var ErrNotFound = errors.New("profile not found")

// Role is the portal role. Stored records may carry values outside the
// known set; they are kept and displayed as-is.
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleAdmin  Role = "admin"
)

// IsAdmin reports whether r grants the admin dashboard.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Record is the profile as it is serialized into the local store. Timestamps
// stay strings so records written by older page scripts survive a round trip.
type Record struct {
	FullName      string `json:"fullName,omitempty"`
	FirstName     string `json:"firstName,omitempty"`
	LastName      string `json:"lastName,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Location      string `json:"location,omitempty"`
	Role          Role   `json:"role,omitempty"`
	ProfilePicURL string `json:"profilePicUrl,omitempty"`
	IsActive      bool   `json:"isActive,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	JoinDate      string `json:"joinDate,omitempty"`
	LoginTime     string `json:"loginTime,omitempty"`
}
