package telemetry

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/agric-empower/portal/internal/demo"
)

// TelemetryGetOutput for GET /telemetry
type TelemetryGetOutput struct {
	CacheControl string `header:"Cache-Control"`
	Body         Telemetry
}

// Register registers the telemetry endpoint.
func Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-telemetry",
		Method:      http.MethodGet,
		Path:        "/telemetry",
		Summary:     "Get a soil reading",
		Description: "Returns a fresh demo reading. Values are random and independent of any previous call.",
		Tags:        []string{"Telemetry"},
	}, func(_ context.Context, _ *struct{}) (*TelemetryGetOutput, error) {
		return &TelemetryGetOutput{
			CacheControl: "no-store",
			Body:         fromReading(demo.GenerateTelemetry()),
		}, nil
	})
}
