package sessions

import (
	"net/http"

	"github.com/google/uuid"
)

const CookieName = "session_id"

// One year, matching the cookie lifetime the web UI relies on.
const cookieMaxAge = 31536000

// Resolve returns the session id carried by the request cookie, or a
// fresh random id when the browser has none yet. uuid v4 draws from
// crypto/rand, so collisions with previously issued ids are not a
// practical concern.
func Resolve(r *http.Request) (string, bool) {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value, false
	}
	return uuid.NewString(), true
}

// Write attaches the session cookie so the browser is recognized on
// subsequent visits.
func Write(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
