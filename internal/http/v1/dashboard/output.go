package dashboard

// DashboardGetOutput for GET /dashboard/{page}
type DashboardGetOutput struct {
	Body Dashboard
}
