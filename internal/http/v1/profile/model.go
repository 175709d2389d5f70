package profile

import (
	profilesvc "github.com/agric-empower/portal/internal/service/profile"
)

// Profile is the stored profile record as the API shows it.
type Profile struct {
	FullName      string `json:"fullName,omitempty"      maxLength:"200" doc:"Display name"                 example:"Jane Smith"`
	FirstName     string `json:"firstName,omitempty"     maxLength:"100" doc:"First name"                   example:"Jane"`
	LastName      string `json:"lastName,omitempty"      maxLength:"100" doc:"Last name"                    example:"Smith"`
	Email         string `json:"email,omitempty"         maxLength:"254" doc:"Email address"                example:"jane@agric-empower.org"`
	Phone         string `json:"phone,omitempty"         maxLength:"32"  doc:"Phone number"                 example:"+256 774 330 491"`
	Location      string `json:"location,omitempty"      maxLength:"100" doc:"Settlement or zone"           example:"Rhino Refugee Camp, Uganda"`
	Role          string `json:"role,omitempty"          maxLength:"32"  doc:"Portal role"                  example:"farmer"`
	ProfilePicURL string `json:"profilePicUrl,omitempty" maxLength:"512" doc:"Avatar image path or URL"     example:"./images/default-avatar.svg"`
	IsActive      bool   `json:"isActive,omitempty"                      doc:"Set for signed-up members"    example:"true"`
	CreatedAt     string `json:"createdAt,omitempty"     maxLength:"40"  doc:"Creation time (ISO 8601)"     example:"2024-01-15T10:30:00.000Z"`
	JoinDate      string `json:"joinDate,omitempty"      maxLength:"40"  doc:"Join time (ISO 8601)"         example:"2024-01-15T10:30:00.000Z"`
	LoginTime     string `json:"loginTime,omitempty"     maxLength:"40"  doc:"Last login time (ISO 8601)"   example:"2024-01-15T10:30:00.000Z"`
}

// FromRecord converts a stored record into its API shape.
func FromRecord(r profilesvc.Record) Profile {
	return Profile{
		FullName:      r.FullName,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		Email:         r.Email,
		Phone:         r.Phone,
		Location:      r.Location,
		Role:          string(r.Role),
		ProfilePicURL: r.ProfilePicURL,
		IsActive:      r.IsActive,
		CreatedAt:     r.CreatedAt,
		JoinDate:      r.JoinDate,
		LoginTime:     r.LoginTime,
	}
}

// Record converts the API shape back into a storable record.
func (p Profile) Record() profilesvc.Record {
	return profilesvc.Record{
		FullName:      p.FullName,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Phone:         p.Phone,
		Location:      p.Location,
		Role:          profilesvc.Role(p.Role),
		ProfilePicURL: p.ProfilePicURL,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		JoinDate:      p.JoinDate,
		LoginTime:     p.LoginTime,
	}
}
