package health

import (
	"encoding/json"
	"net/http"
)

// Response is the payload for the health endpoint.
type Response struct {
	Status      string `json:"status"`
	Storage     string `json:"storage"`
	Subscribers int    `json:"telemetrySubscribers"`
}

// SubscriberCounter reports how many pages are listening for telemetry.
type SubscriberCounter interface {
	Subscribers() int
}

// NewHandler returns a plain HTTP handler for the health check endpoint.
// storage names the configured local store backend.
func NewHandler(storage string, feed SubscriberCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		resp := Response{Status: "healthy", Storage: storage}
		if feed != nil {
			resp.Subscribers = feed.Subscribers()
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
