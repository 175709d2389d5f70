package pages

import (
	"net/http"
	"net/url"
)

// NoticeCookieName carries a one-shot notice across a post-redirect-get.
const NoticeCookieName = "sf_notice"

const noticeMaxAge = 60

func setNotice(w http.ResponseWriter, notice string, secure bool) {
	if notice == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     NoticeCookieName,
		Value:    url.QueryEscape(notice),
		Path:     "/",
		MaxAge:   noticeMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeNotice returns the pending notice and expires the cookie.
func takeNotice(w http.ResponseWriter, r *http.Request, secure bool) string {
	c, err := r.Cookie(NoticeCookieName)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     NoticeCookieName,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	notice, err := url.QueryUnescape(c.Value)
	if err != nil {
		return ""
	}
	return notice
}
