// Package view projects profile records and demo data onto page documents
// and draws those documents as HTML.
package view

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/agric-empower/portal/internal/demo"
	"github.com/agric-empower/portal/internal/service/profile"
)

const (
	fallbackUserName  = "User"
	fallbackAdminName = "Admin"
	fallbackUserRole  = "Farmer"
	fallbackAdminRole = "Administrator"
	fallbackLocation  = "Rhino Refugee Camp"
	fallbackBadge     = "farmer"

	registeredLayout = "1/2/2006"
)

// Renderer writes into documents. It never reads or writes storage, and
// rendering the same input twice leaves the document unchanged.
type Renderer struct {
	avatar string
}

// NewRenderer creates a renderer that shows avatar when a record has none.
func NewRenderer(avatar string) *Renderer {
	if avatar == "" {
		avatar = profile.DefaultAvatar
	}
	return &Renderer{avatar: avatar}
}

// Render projects rec onto doc. Targets doc lacks are skipped.
func (r *Renderer) Render(rec profile.Record, doc *Document) {
	userName := displayName(rec, fallbackUserName)
	userRole := roleLabel(rec.Role, fallbackUserRole)

	setText(doc, TargetUserName, userName)
	setText(doc, TargetUserRole, userRole)
	setText(doc, TargetAdminName, displayName(rec, fallbackAdminName))
	setText(doc, TargetAdminRole, roleLabel(rec.Role, fallbackAdminRole))
	setText(doc, TargetWelcomeMessage, "Welcome back, "+userName+"!")
	setText(doc, TargetUserEmail, rec.Email)
	setText(doc, TargetUserLocation, orDefault(rec.Location, fallbackLocation))
	setText(doc, TargetUserPhone, rec.Phone)

	if el, ok := doc.Lookup(TargetAvatar); ok {
		el.Src = orDefault(rec.ProfilePicURL, r.avatar)
	}
	if el, ok := doc.Lookup(TargetRoleBadge); ok {
		el.Text = userRole
		el.Class = "badge " + orDefault(string(rec.Role), fallbackBadge)
	}
	if el, ok := doc.Lookup(TargetAdminSection); ok {
		el.Hidden = !rec.Role.IsAdmin()
	}
}

// RenderTelemetry writes one reading into the sensor targets.
func (r *Renderer) RenderTelemetry(reading demo.Reading, doc *Document) {
	setText(doc, TargetPH, reading.PHText())
	setText(doc, TargetMoisture, reading.MoistureText())
	setText(doc, TargetTemperature, reading.TemperatureText())
	setText(doc, TargetHumidity, reading.HumidityText())
}

// RenderUsers writes the user count and the users table.
func (r *Renderer) RenderUsers(users []demo.User, doc *Document) {
	setText(doc, TargetTotalUsers, strconv.Itoa(len(users)))
	if el, ok := doc.Lookup(TargetUsersTable); ok {
		rows := make([]UserRow, len(users))
		for i, u := range users {
			rows[i] = UserRow{
				FullName:   u.FullName,
				Email:      u.Email,
				Role:       string(u.Role),
				RoleLabel:  capitalize(string(u.Role)),
				Registered: u.CreatedAt.Format(registeredLayout),
				Status:     "Active",
			}
		}
		el.Rows = rows
	}
}

// RenderChart places chart into the canvas target id.
func (r *Renderer) RenderChart(id TargetID, chart demo.Chart, doc *Document) {
	if el, ok := doc.Lookup(id); ok {
		c := chart
		el.Chart = &c
	}
}

func setText(doc *Document, id TargetID, text string) {
	if el, ok := doc.Lookup(id); ok {
		el.Text = text
	}
}

// displayName is fullName, then firstName, then fallback.
func displayName(rec profile.Record, fallback string) string {
	if rec.FullName != "" {
		return rec.FullName
	}
	return orDefault(rec.FirstName, fallback)
}

func roleLabel(role profile.Role, fallback string) string {
	if role == "" {
		return fallback
	}
	return capitalize(string(role))
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(first)) + s[size:]
}

func orDefault(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}

