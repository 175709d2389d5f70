package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/agric-empower/portal/internal/demo"
	"github.com/agric-empower/portal/internal/http/health"
	"github.com/agric-empower/portal/internal/http/pages"
	"github.com/agric-empower/portal/internal/http/v1/routes"
	"github.com/agric-empower/portal/internal/platform/auth"
	"github.com/agric-empower/portal/internal/platform/config"
	"github.com/agric-empower/portal/internal/platform/firebase"
	applog "github.com/agric-empower/portal/internal/platform/logging"
	appmiddleware "github.com/agric-empower/portal/internal/platform/middleware"
	"github.com/agric-empower/portal/internal/platform/respond"
	"github.com/agric-empower/portal/internal/platform/timeutil"
	contactsvc "github.com/agric-empower/portal/internal/service/contact"
	profilesvc "github.com/agric-empower/portal/internal/service/profile"
	"github.com/agric-empower/portal/internal/session"
	"github.com/agric-empower/portal/internal/storage"
	"github.com/agric-empower/portal/internal/view"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

const (
	apiPrefix = "/v1"
	docsPath  = "/api-docs"
)

// services are the long-lived collaborators built from configuration.
type services struct {
	backend  storage.Store
	verifier auth.Verifier
	feed     *demo.Feed
	clock    timeutil.Clock
	closers  []func() error
}

func (s *services) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "config error", err)
		os.Exit(1)
	}

	ctx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()

	svc, err := newServices(ctx, cfg)
	if err != nil {
		applog.LogError(ctx, "startup failed", err, zap.String("storage", cfg.StorageBackend))
		os.Exit(1)
	}
	defer func() {
		if err := svc.Close(); err != nil {
			applog.LogError(context.Background(), "close error", err)
		}
	}()

	handler, err := newRouter(cfg, svc)
	if err != nil {
		applog.LogError(ctx, "router setup failed", err)
		os.Exit(1)
	}

	feedDone := make(chan struct{})
	go func() {
		defer close(feedDone)
		svc.feed.Run(ctx)
	}()

	srv := newHTTPServer(cfg.Port, handler)

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening",
			zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageBackend))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}

	// Stopping the feed closes the telemetry streams before the server drains.
	stopFeed()
	<-feedDone

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func newHTTPServer(port string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           handler,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}
}

// newServices opens the configured local store and token verifier.
func newServices(ctx context.Context, cfg config.Config) (*services, error) {
	svc := &services{
		verifier: auth.DisabledVerifier{},
		feed:     demo.NewFeed(cfg.TelemetryInterval),
		clock:    timeutil.SystemClock,
	}

	useFirestore := cfg.StorageBackend == config.BackendFirestore
	if useFirestore || cfg.FirebaseAuth {
		clients, err := firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:                    cfg.FirebaseProjectID,
			GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
			EnableAuth:                   cfg.FirebaseAuth,
			EnableFirestore:              useFirestore,
		})
		if err != nil {
			return nil, fmt.Errorf("firebase: %w", err)
		}
		svc.closers = append(svc.closers, clients.Close)
		if clients.Auth != nil {
			svc.verifier = auth.NewFirebaseVerifier(clients.Auth)
		}
		if clients.Firestore != nil {
			svc.backend = storage.NewFirestoreStore(clients.Firestore, cfg.StoreQuotaBytes)
		}
	}

	switch cfg.StorageBackend {
	case config.BackendFirestore:
	case config.BackendSQLite:
		store, err := storage.NewSQLiteStore(cfg.SQLitePath, cfg.StoreQuotaBytes)
		if err != nil {
			_ = svc.Close()
			return nil, fmt.Errorf("sqlite: %w", err)
		}
		svc.closers = append(svc.closers, store.Close)
		svc.backend = store
	default:
		svc.backend = storage.NewMemoryStore(cfg.StoreQuotaBytes,
			storage.WithClientLimit(cfg.StoreMaxClients, cfg.StoreClientIdle))
	}
	return svc, nil
}

// newRouter assembles the middleware stack, the pages and the v1 API.
func newRouter(cfg config.Config, svc *services) (http.Handler, error) {
	policy, err := session.ParseAdminPolicy(cfg.AdminResolvePolicy)
	if err != nil {
		return nil, err
	}
	templates, err := view.LoadTemplates()
	if err != nil {
		return nil, err
	}

	profiles := profilesvc.NewStore(svc.backend)
	factory := profilesvc.NewFactory(profilesvc.FactoryConfig{DefaultAvatar: cfg.DefaultAvatar, Clock: svc.clock})
	controller := session.NewController(session.Config{
		RefreshInterval: svc.feed.Interval(),
		AdminPolicy:     policy,
		Clock:           svc.clock,
	}, profiles, factory, view.NewRenderer(factory.Avatar()))
	contact := contactsvc.NewService(svc.backend, svc.clock)

	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security(apiPrefix+docsPath),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.AllowedOrigins),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(cfg.FirebaseProjectID),
		appmiddleware.ClientID(appmiddleware.CookieOptions{
			Secure:   cfg.Cookie.Secure,
			SameSite: cfg.Cookie.SameSite,
			MaxAge:   cfg.Cookie.MaxAge,
		}),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.NewHandler(cfg.StorageBackend, svc.feed))

	pages.NewHandler(pages.Config{
		Sessions:      controller,
		Contact:       contact,
		Templates:     templates,
		Feed:          svc.feed,
		SecureCookies: cfg.Cookie.Secure,
	}).Routes(router)

	router.Route(apiPrefix, func(r chi.Router) {
		hcfg := huma.DefaultConfig("Agric-Empower Portal API", Version)
		hcfg.DocsPath = docsPath
		hcfg.Servers = []*huma.Server{{URL: apiPrefix}}
		if hcfg.Components.SecuritySchemes == nil {
			hcfg.Components.SecuritySchemes = map[string]*huma.SecurityScheme{}
		}
		hcfg.Components.SecuritySchemes[auth.BearerScheme] = &huma.SecurityScheme{
			Type:         "http",
			Scheme:       "bearer",
			BearerFormat: "JWT",
		}
		api := humachi.New(r, hcfg)
		api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation, addCBORContent)

		routes.Register(api, routes.Deps{
			Verifier: svc.verifier,
			Profiles: profiles,
			Sessions: controller,
			Contact:  contact,
			Clock:    svc.clock,
		})
	})

	return router, nil
}

// addCBORContent advertises CBOR wherever an operation accepts or returns JSON.
func addCBORContent(_ *huma.OpenAPI, op *huma.Operation) {
	if op.RequestBody != nil && op.RequestBody.Content != nil {
		if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
			op.RequestBody.Content["application/cbor"] = jsonContent
		}
	}
	for _, resp := range op.Responses {
		if resp.Content == nil {
			continue
		}
		if jsonContent, ok := resp.Content["application/json"]; ok {
			resp.Content["application/cbor"] = jsonContent
		}
	}
}
