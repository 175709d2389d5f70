package charts

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agric-empower/portal/internal/demo"
	"github.com/agric-empower/portal/internal/platform/timeutil"
	"github.com/agric-empower/portal/internal/view"
)

// ChartsGetInput for GET /charts/{page}
type ChartsGetInput struct {
	Page string `path:"page" enum:"user-dashboard,admin-dashboard" doc:"Dashboard page" example:"admin-dashboard"`
}

// ChartsGetOutput for GET /charts/{page}
type ChartsGetOutput struct {
	Body struct {
		Charts map[string]demo.Chart `json:"charts" doc:"Chart data keyed by canvas id"`
	}
}

// Register registers the charts endpoint.
func Register(api huma.API, clock timeutil.Clock) {
	huma.Register(api, huma.Operation{
		OperationID: "get-charts",
		Method:      http.MethodGet,
		Path:        "/charts/{page}",
		Summary:     "Get dashboard charts",
		Description: "Returns the demo chart data a dashboard draws, keyed by the canvas it belongs to.",
		Tags:        []string{"Dashboard"},
	}, func(_ context.Context, input *ChartsGetInput) (*ChartsGetOutput, error) {
		now := clock()
		out := &ChartsGetOutput{}
		switch view.Page(input.Page) {
		case view.PageUserDashboard:
			out.Body.Charts = map[string]demo.Chart{
				string(view.TargetSoilChart): demo.SoilHealthChart(now),
			}
		case view.PageAdminDashboard:
			users := demo.GenerateUserList(now)
			out.Body.Charts = map[string]demo.Chart{
				string(view.TargetActivityChart): demo.UserActivityChart(now),
				string(view.TargetRolesChart):    demo.UserRolesChart(users),
			}
		default:
			return nil, huma.Error404NotFound("dashboard not found")
		}
		return out, nil
	})
}
