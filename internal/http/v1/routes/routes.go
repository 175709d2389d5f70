package routes

import (
	"net/url"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agric-empower/portal/internal/http/v1/charts"
	"github.com/agric-empower/portal/internal/http/v1/contact"
	"github.com/agric-empower/portal/internal/http/v1/dashboard"
	"github.com/agric-empower/portal/internal/http/v1/profile"
	"github.com/agric-empower/portal/internal/http/v1/session"
	"github.com/agric-empower/portal/internal/http/v1/telemetry"
	"github.com/agric-empower/portal/internal/http/v1/users"
	"github.com/agric-empower/portal/internal/platform/auth"
	"github.com/agric-empower/portal/internal/platform/timeutil"
	contactsvc "github.com/agric-empower/portal/internal/service/contact"
	profilesvc "github.com/agric-empower/portal/internal/service/profile"
	sessionsvc "github.com/agric-empower/portal/internal/session"
)

// Deps are the services the v1 API is built on.
type Deps struct {
	Verifier auth.Verifier
	Profiles *profilesvc.Store
	Sessions *sessionsvc.Controller
	Contact  *contactsvc.Service
	Clock    timeutil.Clock
}

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API, deps Deps) {
	prefix := apiPrefix(api)
	clock := deps.Clock
	if clock == nil {
		clock = timeutil.SystemClock
	}

	// Only operations that declare Security are checked.
	api.UseMiddleware(auth.NewAuthMiddleware(api, deps.Verifier))

	session.Register(api, deps.Sessions)
	profile.Register(api, deps.Profiles)
	dashboard.Register(api, deps.Sessions)
	telemetry.Register(api)
	users.Register(api, clock, prefix)
	charts.Register(api, clock)
	contact.Register(api, deps.Contact)
}

func apiPrefix(api huma.API) string {
	for _, s := range api.OpenAPI().Servers {
		if u, err := url.Parse(s.URL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return ""
}
