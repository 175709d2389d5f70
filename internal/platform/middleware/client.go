package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	applog "github.com/agric-empower/portal/internal/platform/logging"
)

// ClientCookieName holds the opaque identifier of a browser. The identifier
// names the client's local store; it grants nothing and proves nothing.
const ClientCookieName = "sf_client"

type clientIDKey struct{}

// CookieOptions controls the attributes of the client cookie.
type CookieOptions struct {
	Secure   bool
	SameSite http.SameSite
	MaxAge   int
}

// ClientID returns middleware that makes sure every request carries a client
// identifier. A missing or malformed cookie gets a fresh UUIDv4, which is set
// on the response so the browser keeps it.
func ClientID(opts CookieOptions) func(http.Handler) http.Handler {
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := ""
			if c, err := r.Cookie(ClientCookieName); err == nil {
				if _, perr := uuid.Parse(c.Value); perr == nil {
					id = c.Value
				}
			}
			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     ClientCookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   opts.MaxAge,
					HttpOnly: true,
					Secure:   opts.Secure,
					SameSite: opts.SameSite,
				})
			}
			ctx := WithClientID(r.Context(), id)
			ctx = applog.WithFields(ctx, zap.String("clientId", id))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithClientID stores the client identifier in ctx.
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientIDKey{}, id)
}

// ClientIDFromContext returns the client identifier, or "" outside a request.
func ClientIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(clientIDKey{}).(string)
	return id
}
