// Package session drives a page visit: it loads the client's profile,
// decides which record the page shows, renders it, and fills in demo data.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/agric-empower/portal/internal/demo"
	applog "github.com/agric-empower/portal/internal/platform/logging"
	"github.com/agric-empower/portal/internal/platform/timeutil"
	"github.com/agric-empower/portal/internal/service/profile"
	"github.com/agric-empower/portal/internal/view"
)

// Visitor-facing notices.
const (
	NoticeSignup = "Welcome to Agric-Empower! Redirecting to your dashboard..."
	NoticeLogin  = "Login successful! Redirecting to dashboard..."
	NoticeLogout = "You have been logged out successfully!"
)

// AdminPolicy decides what the admin dashboard does with a stored non-admin record.
type AdminPolicy string

const (
	// AdminPolicyOverwrite replaces the stored record with the default admin.
	AdminPolicyOverwrite AdminPolicy = "overwrite"
	// AdminPolicyPreserve shows the default admin but keeps the stored record.
	AdminPolicyPreserve AdminPolicy = "preserve"
)

// ParseAdminPolicy maps a configuration value to a policy.
func ParseAdminPolicy(v string) (AdminPolicy, error) {
	switch p := AdminPolicy(v); p {
	case AdminPolicyOverwrite, AdminPolicyPreserve:
		return p, nil
	case "":
		return AdminPolicyOverwrite, nil
	default:
		return "", fmt.Errorf("unknown admin policy %q", v)
	}
}

// ErrNotDashboard is returned by Bootstrap for pages without a profile.
var ErrNotDashboard = errors.New("page has no profile to bootstrap")

// Config is handed to the controller once at startup.
type Config struct {
	RefreshInterval time.Duration
	AdminPolicy     AdminPolicy
	Clock           timeutil.Clock
}

// Navigation tells the caller where to send the visitor next.
type Navigation struct {
	Target string
	Notice string
	Record profile.Record
}

// Dashboard is the outcome of Bootstrap.
type Dashboard struct {
	Page     view.Page
	Record   profile.Record
	Document *view.Document
	// Synthesized is true when Record was created during this visit.
	Synthesized bool
	// Persisted is false when the record shown differs from the stored one.
	Persisted bool
}

// Controller sequences page visits.
type Controller struct {
	cfg      Config
	store    *profile.Store
	factory  *profile.Factory
	renderer *view.Renderer
}

// NewController wires the collaborators. Zero-valued Config fields get defaults.
func NewController(cfg Config, store *profile.Store, factory *profile.Factory, renderer *view.Renderer) *Controller {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = demo.DefaultInterval
	}
	if cfg.AdminPolicy == "" {
		cfg.AdminPolicy = AdminPolicyOverwrite
	}
	if cfg.Clock == nil {
		cfg.Clock = timeutil.SystemClock
	}
	return &Controller{cfg: cfg, store: store, factory: factory, renderer: renderer}
}

// RefreshInterval is how often dashboards expect a new reading.
func (c *Controller) RefreshInterval() time.Duration {
	return c.cfg.RefreshInterval
}

// Bootstrap runs Load, Resolve, Render and Populate for a dashboard page.
func (c *Controller) Bootstrap(ctx context.Context, clientID string, page view.Page) (*Dashboard, error) {
	if !page.IsDashboard() {
		return nil, ErrNotDashboard
	}

	loaded, loadErr := c.store.Load(ctx, clientID)
	if loadErr != nil && !errors.Is(loadErr, profile.ErrNotFound) {
		applog.LogWarn(ctx, "profile load failed, using page default", zap.Error(loadErr))
	}

	d := c.resolve(ctx, clientID, page, loaded, loadErr == nil)

	d.Document = view.NewPageDocument(page)
	c.renderer.Render(d.Record, d.Document)
	c.populate(page, d.Document)
	return d, nil
}

func (c *Controller) resolve(ctx context.Context, clientID string, page view.Page, loaded profile.Record, found bool) *Dashboard {
	d := &Dashboard{Page: page, Record: loaded, Persisted: true}

	switch {
	case !found:
		d.Record = c.pageDefault(page)
		d.Synthesized = true
		d.Persisted = c.save(ctx, clientID, d.Record)
	case page == view.PageAdminDashboard && !loaded.Role.IsAdmin():
		d.Record = c.factory.DefaultAdmin()
		d.Synthesized = true
		if c.cfg.AdminPolicy == AdminPolicyOverwrite {
			d.Persisted = c.save(ctx, clientID, d.Record)
		} else {
			d.Persisted = false
		}
	}
	return d
}

// save stores a synthesized record. A failure is logged, not returned: the
// page still shows the record for this visit.
func (c *Controller) save(ctx context.Context, clientID string, rec profile.Record) bool {
	if err := c.store.Save(ctx, clientID, rec); err != nil {
		applog.LogWarn(ctx, "could not persist synthesized profile", zap.Error(err))
		return false
	}
	return true
}

func (c *Controller) pageDefault(page view.Page) profile.Record {
	if page == view.PageAdminDashboard {
		return c.factory.DefaultAdmin()
	}
	return c.factory.DefaultFarmer()
}

func (c *Controller) populate(page view.Page, doc *view.Document) {
	now := c.cfg.Clock()
	switch page {
	case view.PageUserDashboard:
		c.renderer.RenderTelemetry(demo.GenerateTelemetry(), doc)
		c.renderer.RenderChart(view.TargetSoilChart, demo.SoilHealthChart(now), doc)
	case view.PageAdminDashboard:
		users := demo.GenerateUserList(now)
		c.renderer.RenderUsers(users, doc)
		c.renderer.RenderChart(view.TargetActivityChart, demo.UserActivityChart(now), doc)
		c.renderer.RenderChart(view.TargetRolesChart, demo.UserRolesChart(users), doc)
	}
}

// Signup stores a record built from the form.
func (c *Controller) Signup(ctx context.Context, clientID string, in profile.SignupInput) (Navigation, error) {
	return c.enter(ctx, clientID, c.factory.FromSignup(in), NoticeSignup)
}

// Login stores the demo login record for email.
func (c *Controller) Login(ctx context.Context, clientID, email string) (Navigation, error) {
	return c.enter(ctx, clientID, c.factory.FromLogin(email), NoticeLogin)
}

// LoginVerified stores a login record whose role came from a verified credential.
func (c *Controller) LoginVerified(ctx context.Context, clientID, email string, role profile.Role) (Navigation, error) {
	return c.enter(ctx, clientID, c.factory.FromVerifiedLogin(email, role), NoticeLogin)
}

func (c *Controller) enter(ctx context.Context, clientID string, rec profile.Record, notice string) (Navigation, error) {
	if err := c.store.Save(ctx, clientID, rec); err != nil {
		return Navigation{}, fmt.Errorf("save profile: %w", err)
	}
	return Navigation{Target: DashboardFor(rec.Role), Notice: notice, Record: rec}, nil
}

// Logout erases the client's local store.
func (c *Controller) Logout(ctx context.Context, clientID string) (Navigation, error) {
	if err := c.store.Clear(ctx, clientID); err != nil {
		return Navigation{}, fmt.Errorf("clear store: %w", err)
	}
	return Navigation{Target: view.PageIndex.Path(), Notice: NoticeLogout}, nil
}

// DashboardFor is the landing page for role.
func DashboardFor(role profile.Role) string {
	if role.IsAdmin() {
		return view.PageAdminDashboard.Path()
	}
	return view.PageUserDashboard.Path()
}
