package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"tanya/tanya/sessions"
	"tanya/tanya/utils/types"
)

type contextKey string

const SessionIDKey contextKey = "session_id"

// RequireSession rejects API requests that arrive without a session
// cookie. The page handler is the only place new sessions are minted, so
// a missing cookie here means the browser lost or never had one.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(sessions.CookieName)
		if err != nil || c.Value == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(types.APIError{Error: "Session expired"})
			return
		}
		ctx := context.WithValue(r.Context(), SessionIDKey, c.Value)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID pulls the id RequireSession stored on the context.
func SessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}
