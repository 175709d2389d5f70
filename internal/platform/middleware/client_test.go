package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestClientIDIssuesCookieWhenMissing(t *testing.T) {
	var seen string
	h := ClientID(CookieOptions{})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ClientIDFromContext(r.Context())
	}))

	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected UUID client ID in context, got %q", seen)
	}
	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != ClientCookieName {
		t.Fatalf("expected one %s cookie, got %v", ClientCookieName, cookies)
	}
	if cookies[0].Value != seen {
		t.Fatalf("cookie value %q does not match context %q", cookies[0].Value, seen)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("expected HttpOnly client cookie")
	}
}

func TestClientIDReusesValidCookie(t *testing.T) {
	existing := uuid.NewString()
	var seen string
	h := ClientID(CookieOptions{})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ClientIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: existing})
	resp := httptest.NewRecorder()
	h.ServeHTTP(resp, req)

	if seen != existing {
		t.Fatalf("expected client ID %s, got %s", existing, seen)
	}
	if len(resp.Result().Cookies()) != 0 {
		t.Fatal("expected no new cookie when a valid one was sent")
	}
}

func TestClientIDReplacesMalformedCookie(t *testing.T) {
	var seen string
	h := ClientID(CookieOptions{})(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = ClientIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: ClientCookieName, Value: "../../etc/passwd"})
	h.ServeHTTP(httptest.NewRecorder(), req)

	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected replacement UUID, got %q", seen)
	}
}

func TestClientIDFromContextEmpty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := ClientIDFromContext(req.Context()); got != "" {
		t.Fatalf("expected empty client ID, got %q", got)
	}
}
