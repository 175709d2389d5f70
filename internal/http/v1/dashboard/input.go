package dashboard

// DashboardGetInput for GET /dashboard/{page}
type DashboardGetInput struct {
	Page string `path:"page" enum:"user-dashboard,admin-dashboard" doc:"Dashboard page" example:"admin-dashboard"`
}
