package charts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	humachi "github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"

	"github.com/agric-empower/portal/internal/demo"
	"github.com/agric-empower/portal/internal/platform/timeutil"
)

func newTestRouter() chi.Router {
	router := chi.NewRouter()
	api := humachi.New(router, huma.DefaultConfig("ChartsTest", "test"))
	Register(api, timeutil.Fixed(time.Date(2025, 6, 18, 9, 0, 0, 0, time.UTC)))
	return router
}

func getCharts(t *testing.T, page string) map[string]demo.Chart {
	t.Helper()
	resp := httptest.NewRecorder()
	newTestRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/charts/"+page, nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	var body struct {
		Charts map[string]demo.Chart `json:"charts"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("json unmarshal: %v", err)
	}
	return body.Charts
}

func TestUserDashboardCharts(t *testing.T) {
	charts := getCharts(t, "user-dashboard")

	soil, ok := charts["soilHealthChart"]
	if !ok || len(charts) != 1 {
		t.Fatalf("expected only the soil chart, got %v", charts)
	}
	if soil.Type != "line" || len(soil.Labels) != 7 || len(soil.Datasets) != 2 {
		t.Fatalf("unexpected soil chart: %+v", soil)
	}
}

func TestAdminDashboardCharts(t *testing.T) {
	charts := getCharts(t, "admin-dashboard")

	roles, ok := charts["userRolesChart"]
	if !ok {
		t.Fatalf("missing roles chart in %v", charts)
	}
	if roles.Type != "doughnut" || len(roles.Datasets) != 1 {
		t.Fatalf("unexpected roles chart: %+v", roles)
	}
	if got := roles.Datasets[0].Values; len(got) != 2 || got[0] != 4 || got[1] != 1 {
		t.Fatalf("expected 4 farmers and 1 admin, got %v", got)
	}
	if _, ok := charts["userActivityChart"]; !ok {
		t.Fatal("missing activity chart")
	}
}

func TestChartsUnknownPage(t *testing.T) {
	resp := httptest.NewRecorder()
	newTestRouter().ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/charts/login", nil))

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", resp.Code)
	}
}
