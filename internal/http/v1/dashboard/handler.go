package dashboard

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	profilehttp "github.com/agric-empower/portal/internal/http/v1/profile"
	appmiddleware "github.com/agric-empower/portal/internal/platform/middleware"
	sessionsvc "github.com/agric-empower/portal/internal/session"
	"github.com/agric-empower/portal/internal/view"
)

// Register registers the dashboard endpoint.
func Register(api huma.API, controller *sessionsvc.Controller) {
	huma.Register(api, huma.Operation{
		OperationID: "get-dashboard",
		Method:      http.MethodGet,
		Path:        "/dashboard/{page}",
		Summary:     "Bootstrap a dashboard",
		Description: "Loads the client's profile, substitutes the page default when needed, and returns the rendered page targets. " +
			"Visiting the admin dashboard may store the default admin record.",
		Tags: []string{"Dashboard"},
	}, func(ctx context.Context, input *DashboardGetInput) (*DashboardGetOutput, error) {
		page, ok := view.ParsePage(input.Page)
		if !ok || !page.IsDashboard() {
			return nil, huma.Error404NotFound("dashboard not found")
		}
		d, err := controller.Bootstrap(ctx, appmiddleware.ClientIDFromContext(ctx), page)
		if err != nil {
			if errors.Is(err, sessionsvc.ErrNotDashboard) {
				return nil, huma.Error404NotFound("dashboard not found")
			}
			return nil, huma.Error500InternalServerError("internal error")
		}
		return &DashboardGetOutput{Body: Dashboard{
			Page:                   string(d.Page),
			Profile:                profilehttp.FromRecord(d.Record),
			Synthesized:            d.Synthesized,
			Persisted:              d.Persisted,
			Targets:                d.Document.Targets(),
			RefreshIntervalSeconds: int(controller.RefreshInterval().Seconds()),
		}}, nil
	})
}
