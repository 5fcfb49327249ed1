package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/gatekeeper/internal/common"
)

// setSessionCookie installs the session token in the browser. HttpOnly
// and SameSite=Strict are unconditional; Secure follows configuration so
// local development over plain HTTP stays possible.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(s.cookieMaxAge.Seconds()),
	})
}

// clearSessionCookie expires the session cookie. MaxAge < 0 serializes
// as Max-Age=0, which removes the cookie immediately.
func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     common.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   -1,
	})
}
