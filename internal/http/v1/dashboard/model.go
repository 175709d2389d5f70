package dashboard

import (
	profilehttp "github.com/agric-empower/portal/internal/http/v1/profile"
	"github.com/agric-empower/portal/internal/view"
)

// Dashboard is a bootstrapped dashboard page.
type Dashboard struct {
	Page                   string                  `json:"page"                   doc:"Dashboard page name"                           example:"user-dashboard"`
	Profile                profilehttp.Profile     `json:"profile"                doc:"Record the page shows"`
	Synthesized            bool                    `json:"synthesized"            doc:"True when the record was created on this visit" example:"false"`
	Persisted              bool                    `json:"persisted"              doc:"False when the shown record is not the stored one" example:"true"`
	Targets                map[string]view.Element `json:"targets"                doc:"Rendered page targets keyed by element id"`
	RefreshIntervalSeconds int                     `json:"refreshIntervalSeconds" doc:"How often the page expects a new reading"       example:"30"`
}
