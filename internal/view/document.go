package view

import (
	"github.com/agric-empower/portal/internal/demo"
)

// TargetID names a spot in a page the renderer may write to.
type TargetID string

// Profile targets.
const (
	TargetUserName       TargetID = "user-name"
	TargetUserRole       TargetID = "user-role"
	TargetAdminName      TargetID = "admin-name"
	TargetAdminRole      TargetID = "admin-role"
	TargetAvatar         TargetID = "avatar"
	TargetWelcomeMessage TargetID = "welcome-message"
	TargetRoleBadge      TargetID = "role-badge"
	TargetUserEmail      TargetID = "user-email"
	TargetUserLocation   TargetID = "user-location"
	TargetUserPhone      TargetID = "user-phone"
	TargetAdminSection   TargetID = "admin-section"
)

// Telemetry targets.
const (
	TargetPH          TargetID = "ph-value"
	TargetMoisture    TargetID = "moisture-value"
	TargetTemperature TargetID = "temperature-value"
	TargetHumidity    TargetID = "humidity-value"
)

// Admin directory and chart targets.
const (
	TargetTotalUsers    TargetID = "total-users-count"
	TargetUsersTable    TargetID = "users-table-body"
	TargetSoilChart     TargetID = "soilHealthChart"
	TargetActivityChart TargetID = "userActivityChart"
	TargetRolesChart    TargetID = "userRolesChart"
)

// Element is the renderable state of one target.
type Element struct {
	Text   string      `json:"text,omitempty"`
	Src    string      `json:"src,omitempty"`
	Class  string      `json:"class,omitempty"`
	Hidden bool        `json:"hidden,omitempty"`
	Rows   []UserRow   `json:"rows,omitempty"`
	Chart  *demo.Chart `json:"chart,omitempty"`
}

// UserRow is one line of the users table.
type UserRow struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RoleLabel  string `json:"roleLabel"`
	Registered string `json:"registered"`
	Status     string `json:"status"`
}

// Document is the set of targets a page exposes. Targets the page does not
// have are simply absent.
type Document struct {
	targets map[TargetID]*Element
}

// NewDocument creates a document exposing ids, all blank.
func NewDocument(ids ...TargetID) *Document {
	d := &Document{targets: make(map[TargetID]*Element, len(ids))}
	for _, id := range ids {
		d.targets[id] = &Element{}
	}
	return d
}

// Lookup returns the element for id if the page has it.
func (d *Document) Lookup(id TargetID) (*Element, bool) {
	if d == nil {
		return nil, false
	}
	el, ok := d.targets[id]
	return el, ok
}

// Get returns the element for id, or a blank element when absent. Templates
// use it so a missing target renders as nothing.
func (d *Document) Get(id string) Element {
	if el, ok := d.Lookup(TargetID(id)); ok {
		return *el
	}
	return Element{}
}

// Targets returns a copy of the document keyed by target name.
func (d *Document) Targets() map[string]Element {
	out := make(map[string]Element, len(d.targets))
	for id, el := range d.targets {
		out[string(id)] = *el
	}
	return out
}
