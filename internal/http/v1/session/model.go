package session

import (
	profilehttp "github.com/agric-empower/portal/internal/http/v1/profile"
)

// Navigation tells the page where to go next and what to tell the visitor.
type Navigation struct {
	Redirect string               `json:"redirect"          doc:"Page to navigate to"                      example:"/user-dashboard.html"`
	Notice   string               `json:"notice"            doc:"Message to show the visitor"              example:"Login successful! Redirecting to dashboard..."`
	Profile  *profilehttp.Profile `json:"profile,omitempty" doc:"Stored profile record, absent after logout"`
}
