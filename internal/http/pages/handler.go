// Package pages serves the portal's HTML pages, their form posts and the
// telemetry websocket.
package pages

import (
	"bytes"
	"errors"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/agric-empower/portal/internal/demo"
	applog "github.com/agric-empower/portal/internal/platform/logging"
	appmiddleware "github.com/agric-empower/portal/internal/platform/middleware"
	"github.com/agric-empower/portal/internal/platform/respond"
	contactsvc "github.com/agric-empower/portal/internal/service/contact"
	"github.com/agric-empower/portal/internal/service/profile"
	"github.com/agric-empower/portal/internal/session"
	"github.com/agric-empower/portal/internal/storage"
	"github.com/agric-empower/portal/internal/view"
)

// Config holds the collaborators of the page handlers.
type Config struct {
	Sessions  *session.Controller
	Contact   *contactsvc.Service
	Templates *view.Templates
	Feed      *demo.Feed
	// SecureCookies marks the notice cookie Secure.
	SecureCookies bool
}

// Handler serves pages.
type Handler struct {
	cfg      Config
	upgrader websocket.Upgrader
}

// NewHandler creates the page handler.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		cfg: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Routes mounts the pages on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.static(view.PageIndex))
	r.Get(view.PageIndex.Path(), h.static(view.PageIndex))
	r.Get(view.PageSignup.Path(), h.static(view.PageSignup))
	r.Get(view.PageLogin.Path(), h.static(view.PageLogin))
	r.Get(view.PageUserDashboard.Path(), h.dashboard(view.PageUserDashboard))
	r.Get(view.PageAdminDashboard.Path(), h.dashboard(view.PageAdminDashboard))

	r.Post("/signup", h.signup)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)
	r.Post("/contact", h.contact)

	r.Get("/ws/telemetry", h.telemetryStream)

	r.Handle("/images/*", assetHandler(view.Assets()))
}

// assetHandler serves embedded images. Directory listings are not exposed.
func assetHandler(assets fs.FS) http.Handler {
	files := http.FileServerFS(assets)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=86400")
		files.ServeHTTP(w, r)
	})
}

func (h *Handler) static(p view.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notice := takeNotice(w, r, h.cfg.SecureCookies)
		h.render(w, r, http.StatusOK, p, nil, notice, "")
	}
}

func (h *Handler) dashboard(p view.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		d, err := h.cfg.Sessions.Bootstrap(ctx, appmiddleware.ClientIDFromContext(ctx), p)
		if err != nil {
			applog.LogError(ctx, "dashboard bootstrap failed", err, zap.String("page", string(p)))
			h.render(w, r, http.StatusInternalServerError, view.PageIndex, nil, "", "Something went wrong. Please try again.")
			return
		}
		notice := takeNotice(w, r, h.cfg.SecureCookies)
		h.render(w, r, http.StatusOK, p, d.Document, notice, "")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r, view.PageSignup) {
		return
	}
	ctx := r.Context()
	nav, err := h.cfg.Sessions.Signup(ctx, appmiddleware.ClientIDFromContext(ctx), profile.SignupInput{
		FirstName: r.PostFormValue("firstName"),
		LastName:  r.PostFormValue("lastName"),
		Email:     r.PostFormValue("email"),
		Phone:     r.PostFormValue("phone"),
		Location:  r.PostFormValue("location"),
		Role:      r.PostFormValue("role"),
	})
	if err != nil {
		h.saveFailed(w, r, view.PageSignup, err)
		return
	}
	h.redirect(w, r, nav)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r, view.PageLogin) {
		return
	}
	ctx := r.Context()
	nav, err := h.cfg.Sessions.Login(ctx, appmiddleware.ClientIDFromContext(ctx), r.PostFormValue("email"))
	if err != nil {
		h.saveFailed(w, r, view.PageLogin, err)
		return
	}
	h.redirect(w, r, nav)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	nav, err := h.cfg.Sessions.Logout(ctx, appmiddleware.ClientIDFromContext(ctx))
	if err != nil {
		applog.LogError(ctx, "logout failed", err)
		h.render(w, r, http.StatusInternalServerError, view.PageIndex, nil, "", "Could not log you out. Please try again.")
		return
	}
	h.redirect(w, r, nav)
}

func (h *Handler) contact(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r, view.PageIndex) {
		return
	}
	ctx := r.Context()
	_, err := h.cfg.Contact.Submit(ctx, appmiddleware.ClientIDFromContext(ctx),
		r.PostFormValue("name"), r.PostFormValue("email"), r.PostFormValue("message"))
	if err != nil {
		if notice := contactsvc.Notice(err); notice != "" {
			h.render(w, r, http.StatusUnprocessableEntity, view.PageIndex, nil, "", notice)
			return
		}
		h.saveFailed(w, r, view.PageIndex, err)
		return
	}
	h.redirect(w, r, session.Navigation{Target: view.PageIndex.Path() + "#contact", Notice: contactsvc.ThankYou})
}

func (h *Handler) parseForm(w http.ResponseWriter, r *http.Request, p view.Page) bool {
	if err := r.ParseForm(); err != nil {
		applog.LogWarn(r.Context(), "unreadable form", zap.Error(err))
		h.render(w, r, http.StatusBadRequest, p, nil, "", "The form could not be read. Please try again.")
		return false
	}
	return true
}

func (h *Handler) saveFailed(w http.ResponseWriter, r *http.Request, p view.Page, err error) {
	status := http.StatusInternalServerError
	msg := "Something went wrong. Please try again."
	if errors.Is(err, storage.ErrQuotaExceeded) {
		status = http.StatusInsufficientStorage
		msg = "Your browser storage is full. Please log out and try again."
	}
	applog.LogError(r.Context(), "form save failed", err, zap.String("page", string(p)))
	h.render(w, r, status, p, nil, "", msg)
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, nav session.Navigation) {
	setNotice(w, nav.Notice, h.cfg.SecureCookies)
	_ = respond.WriteRedirect(w, r.Context(), http.StatusSeeOther, nav.Target, nav.Notice)
}

// render buffers the page so a template failure still yields a clean error response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, p view.Page, doc *view.Document, notice, errMsg string) {
	var buf bytes.Buffer
	if err := h.cfg.Templates.Execute(&buf, p, doc, notice, errMsg); err != nil {
		applog.LogError(r.Context(), "template execution failed", err, zap.String("page", string(p)))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
