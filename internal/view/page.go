package view

// Page is a servable page.
type Page string

const (
	PageIndex          Page = "index"
	PageSignup         Page = "signup"
	PageLogin          Page = "login"
	PageUserDashboard  Page = "user-dashboard"
	PageAdminDashboard Page = "admin-dashboard"
)

// Path is the URL the page is served at.
func (p Page) Path() string {
	return "/" + string(p) + ".html"
}

// IsDashboard reports whether the page shows a profile.
func (p Page) IsDashboard() bool {
	return p == PageUserDashboard || p == PageAdminDashboard
}

// ParsePage maps a dashboard name from a URL to a Page.
func ParsePage(name string) (Page, bool) {
	switch Page(name) {
	case PageIndex, PageSignup, PageLogin, PageUserDashboard, PageAdminDashboard:
		return Page(name), true
	}
	return "", false
}

// NewPageDocument returns the document for p with the targets its template draws.
func NewPageDocument(p Page) *Document {
	switch p {
	case PageUserDashboard:
		return NewDocument(
			TargetUserName, TargetUserRole, TargetAvatar, TargetWelcomeMessage, TargetRoleBadge,
			TargetUserEmail, TargetUserLocation, TargetUserPhone, TargetAdminSection,
			TargetPH, TargetMoisture, TargetTemperature, TargetHumidity,
			TargetSoilChart,
		)
	case PageAdminDashboard:
		return NewDocument(
			TargetAdminName, TargetAdminRole, TargetAvatar,
			TargetTotalUsers, TargetUsersTable,
			TargetActivityChart, TargetRolesChart,
		)
	default:
		return NewDocument()
	}
}
